package deckserver

// Bodies of error responses. Clients match on these strings.
const (
	ErrMissingTokenStr         = "missing-token"
	ErrExpiredTokenStr         = "expired-token"
	ErrBadTokenStr             = "bad-token"
	ErrInvalidCredentialsStr   = "invalid-credentials"
	ErrEditorDisabledStr       = "editor-disabled"
	ErrInvalidRequestFormatStr = "bad-request-format"
	ErrDeckNotFoundStr         = "deck-not-found"
	ErrDeckExistsStr           = "deck-already-exists"
	ErrInvalidDeckNameStr      = "invalid-deck-name"
	ErrNameMismatchStr         = "deck-name-mismatch"
	ErrInvalidDeckStr          = "invalid-deck"
	ErrBadSizeStr              = "bad-size"
	ErrServerTimeoutStr        = "server-timeout"
	ErrForbiddenOriginStr      = "forbidden-origin"
	ErrUnknownStr              = "unknown-error"
)
