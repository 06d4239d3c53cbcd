// Package render draws game views as plain text for terminals and logs.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"magecards/game"
	"magecards/i18n"
	"magecards/protocol"
)

// Text renders v. Every view type has a case; unknown views render empty.
func Text(v game.View) string {
	var b strings.Builder
	switch v := v.(type) {
	case game.BrowserView:
		browser(&b, v)
	case game.LobbyView:
		fmt.Fprintf(&b, "== %s ==\n", v.RoomName)
		fmt.Fprintln(&b, i18n.Translate("LOBBY_WAITING_TITLE"))
		fmt.Fprintln(&b, i18n.Translate("LOBBY_WAITING_DESC"))
		players(&b, v.Players)
		if v.CanStart {
			fmt.Fprintf(&b, "[start] %s\n", i18n.Translate("START_GAME_BTN"))
		}
	case game.WaitingView:
		fmt.Fprintln(&b, i18n.Translate("WAITING_ROOM_TITLE"))
		fmt.Fprintln(&b, i18n.Translate("WAITING_ROOM_DESC"))
		players(&b, v.Players)
	case game.CzarWaitView:
		blackCard(&b, v.BlackCard)
		fmt.Fprintln(&b, czar("INFO_CZAR_WAIT"))
		fmt.Fprintln(&b, i18n.Translate("INFO_CZAR_DESC"))
		players(&b, v.Players)
	case game.SubmittedView:
		blackCard(&b, v.BlackCard)
		fmt.Fprintln(&b, i18n.Translate("INFO_PLAYER_WAIT"))
		fmt.Fprintln(&b, i18n.Translate("CARD_SENT_MSG"))
		players(&b, v.Players)
	case game.HandView:
		hand(&b, v)
	case game.JudgingView:
		judging(&b, v)
	case game.SummaryView:
		summary(&b, v)
	case game.GameOverView:
		fmt.Fprintln(&b, i18n.Translate("GAME_OVER_TITLE"))
		fmt.Fprintf(&b, "%s %s\n", v.Winner, i18n.Translate("GAME_OVER_SUBTITLE"))
		fmt.Fprintln(&b, i18n.Translate("GAME_OVER_GLORY"))
		fmt.Fprintf(&b, "[reload] %s\n", i18n.Translate("BTN_BACK_LOBBY"))
	}
	return b.String()
}

// State renders the view of s followed by its notice, if any.
func State(s game.State) (string, error) {
	v, err := s.View()
	if err != nil {
		return "", err
	}
	out := Text(v)
	if s.Notice != nil {
		out += "! " + s.Notice.Text + "\n"
	}
	return out, nil
}

func Chat(line game.ChatLine) string {
	scope := ""
	if line.Lobby {
		scope = "[lobby] "
	}
	return fmt.Sprintf("%s%s: %s", scope, line.Author, line.Message)
}

func browser(b *strings.Builder, v game.BrowserView) {
	fmt.Fprintf(b, "== %s ==\n", i18n.Translate("GAME_TITLE"))
	if !v.Authenticated {
		fmt.Fprintln(b, "nick?")
		return
	}
	fmt.Fprintln(b, i18n.Translate("ROOM_LIST_HEADER"))
	if len(v.Rooms) == 0 {
		fmt.Fprintln(b, i18n.Translate("NO_ROOMS"))
	}
	for _, r := range v.Rooms {
		lock := i18n.Translate("ROOM_PASS_NO")
		if r.HasPassword {
			lock = i18n.Translate("ROOM_PASS_YES")
		}
		fmt.Fprintf(b, "  %s  %s: %d/%d  %s\n", r.Name, i18n.Translate("ROOM_PLAYERS"), r.Players, r.Max, lock)
	}
	if len(v.Decks) > 0 {
		fmt.Fprintf(b, "decks: %s\n", strings.Join(v.Decks, ", "))
	}
	for _, p := range v.Players {
		where := "lobby"
		if p.Room != nil {
			where = *p.Room
		}
		fmt.Fprintf(b, "  * %s (%s)\n", p.Nick, where)
	}
}

func hand(b *strings.Builder, v game.HandView) {
	blackCard(b, v.BlackCard)
	fmt.Fprintln(b, i18n.Format("INFO_PICK_CARDS", map[string]string{"count": strconv.Itoa(v.Required)}))
	for _, c := range v.Cards {
		badge := "   "
		if c.Ordinal > 0 {
			badge = fmt.Sprintf("(%d)", c.Ordinal)
		}
		fmt.Fprintf(b, "%s %s  %s\n", badge, c.ID, c.Text)
	}
	if v.CanSubmit {
		fmt.Fprintf(b, "[submit] %s\n", i18n.Translate("BTN_CONFIRM_SELECTION"))
	}
	players(b, v.Players)
}

func judging(b *strings.Builder, v game.JudgingView) {
	blackCard(b, v.BlackCard)
	if v.IsCzar {
		fmt.Fprintln(b, czar("INFO_JUDGING_CZAR"))
	} else {
		fmt.Fprintln(b, czar("INFO_JUDGING_PLAYER"))
	}
	for _, s := range v.Submissions {
		if v.CanPick {
			fmt.Fprintf(b, "[pick %d] %s\n", s.ID, s.FullText)
		} else {
			fmt.Fprintf(b, "  - %s\n", s.FullText)
		}
	}
	players(b, v.Players)
}

func summary(b *strings.Builder, v game.SummaryView) {
	fmt.Fprintln(b, i18n.Translate("SUMMARY_TITLE"))
	blackCard(b, v.BlackCard)
	if v.WinningAuthor != "" {
		fmt.Fprintf(b, "%s %s\n", i18n.Translate("AUTHOR_LABEL"), v.WinningAuthor)
	}
	for _, s := range v.Submissions {
		badge := ""
		if s.IsWinner {
			badge = i18n.Translate("WINNER_BADGE") + " "
		}
		fmt.Fprintf(b, "  %s%s (%s %s)\n", badge, s.FullText, i18n.Translate("AUTHOR_LABEL"), s.Author)
	}
	label := i18n.Translate("BTN_WAITING")
	if v.ReadyEnabled {
		label = "[ready] " + i18n.Translate("BTN_NEXT_SHIFT")
	}
	fmt.Fprintf(b, "%s (%d/%d)\n", label, v.Ready.Ready, v.Ready.Total)
	players(b, v.Players)
}

func blackCard(b *strings.Builder, text string) {
	fmt.Fprintf(b, "[ %s ]\n", text)
}

func players(b *strings.Builder, list []protocol.RoomPlayer) {
	for _, p := range list {
		crown := ""
		if p.IsCzar {
			crown = "👑 "
		}
		fmt.Fprintf(b, "  %s%s (%d)\n", crown, p.Nick, p.Score)
	}
}

func czar(key string) string {
	return i18n.Format(key, map[string]string{"czar": i18n.Translate("ROLE_CZAR")})
}
