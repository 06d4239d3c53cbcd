package i18n

import "strings"

// Texts is the Polish string table shared with the server. Server ERROR
// messages are either one of these keys or a literal sentence.
var Texts = map[string]string{
	"GAME_TITLE":  "Karty przeciwko magom ognia",
	"ROLE_CZAR":   "Magnat",
	"ROLE_PLAYER": "Kopacz",
	"POINT_NAME":  "bryłka rudy",

	"ROOM_LIST_HEADER": "Dostępne obozy",
	"NO_ROOMS":         "Brak obozów. Załóż pierwszy!",
	"ROOM_PLAYERS":     "Skazańcy",
	"ROOM_PASS_YES":    "🔒 TAK",
	"ROOM_PASS_NO":     "NIE",

	"LOBBY_WAITING_TITLE": "Oczekiwanie na start...",
	"LOBBY_WAITING_DESC":  "Gdy wszyscy będą gotowi, rytuał się rozpocznie.",
	"START_GAME_BTN":      "ROZPOCZNIJ GRĘ",
	"WAITING_ROOM_TITLE":  "Rytuał w toku...",
	"WAITING_ROOM_DESC":   "Dołączysz w następnej rundzie.",
	"CARD_SENT_MSG":       "Wysłano. Cierpliwości.",

	"INFO_CZAR_WAIT":      "Jesteś {czar}. Czekaj na kopaczy.",
	"INFO_CZAR_DESC":      "Tu jest napisane coś o alchemii.",
	"INFO_PLAYER_WAIT":    "Czekaj na pozostałych...",
	"INFO_PICK_CARDS":     "Wybierz {count} kart(y):",
	"INFO_JUDGING_CZAR":   "{czar}! Wybierz, kto dostanie bryłkę rudy.",
	"INFO_JUDGING_PLAYER": "{czar} ocenia wasze wypociny...",
	"CARD_FOOTER_CZAR":    "Kliknij by wybrać",

	"SUMMARY_TITLE": "PODSUMOWANIE RUNDY",
	"AUTHOR_LABEL":  "Autor:",
	"WINNER_BADGE":  "🏆 WYGRANA!",

	"BTN_CONFIRM_SELECTION": "ZATWIERDŹ",
	"BTN_READY":             "GOTOWY",
	"BTN_WAITING":           "Oczekiwanie...",
	"BTN_NEXT_SHIFT":        "NASTĘPNA RUNDA",

	"GAME_OVER_TITLE":    "KONIEC GRY!",
	"GAME_OVER_SUBTITLE": "obudził śniącego",
	"GAME_OVER_GLORY":    "Chwała zwycięzcy!",
	"BTN_BACK_LOBBY":     "WRÓĆ DO LOBBY",

	"ERR_ROOM_EXISTS":          "Obóz o tej nazwie już istnieje!",
	"ERR_ROOM_FULL":            "Obóz pełny",
	"ERR_WRONG_PASS":           "Błędne hasło",
	"ERR_NO_ROOM":              "Obóz nie istnieje",
	"ERR_NICK_TAKEN":           "Nick zajęty!",
	"ERR_MIN_PLAYERS":          "Potrzeba min. 2 skazańców, by zacząć!",
	"ERR_GAME_ALREADY_STARTED": "Gra już trwa!",
	"ERR_NOT_ALLOWED_TO_START": "Tylko założyciel obozu może zacząć grę.",
	"MSG_WINNER":               "Wygrywa: {nick}!",
	"MSG_TIMEOUT":              "TIMEOUT! Automatyczny wybór.",
	"MSG_DECK_EMPTY":           "Koniec kart!",
	"MSG_GHOST":                "Duch",
	"MSG_SYSTEM":               "SYSTEM",

	"ERR_ROOM_NAME_REQUIRED": "Podaj nazwę pokoju",
	"ERR_NO_DECK_SELECTED":   "Wybierz talię!",
	"ERR_INVALID_TIMEOUT":    "Wybierz poprawny timeout lub czekaj!",
	"ERR_INVALID_SETTINGS":   "Niepoprawne ustawienia pokoju",
	"ERR_DISCONNECTED":       "Rozłączono!",
}

// Translate looks key up in Texts. Unknown keys are returned unchanged, so a
// literal server message passes through as is.
func Translate(key string) string {
	if text, ok := Texts[key]; ok {
		return text
	}
	return key
}

// Format translates key and substitutes {name} placeholders.
func Format(key string, args map[string]string) string {
	text := Translate(key)
	for name, value := range args {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
