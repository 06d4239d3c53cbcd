package config

import "time"

// EditorCookie describes the cookie that carries the editor session token.
var EditorCookie = struct {
	Name     string
	MaxAge   time.Duration
	Path     string
	HttpOnly bool
}{
	Name:     "token",
	MaxAge:   30 * 24 * time.Hour,
	Path:     "/",
	HttpOnly: true,
}
