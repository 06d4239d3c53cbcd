package domain

import "errors"

var (
	UnexpectedDatabaseError = errors.New("unexpected-database-error")
	ErrDeckNotFound         = errors.New("deck-not-found")
	ErrDuplicateDeck        = errors.New("duplicate-deck")
	ErrInvalidDeckName      = errors.New("invalid-deck-name")
)

var (
	UnexpectedPasswordHashingError        = errors.New("unexpected-password-hashing-error")
	UnexpectedPasswordHashComparisonError = errors.New("unexpected-password-hash-comparison-error")
)

var (
	UnexpectedTokenGenerationError   = errors.New("unexpected-token-generation-error")
	UnexpectedTokenVerificationError = errors.New("unexpected-token-verification-error")
	ErrInvalidSigningAlg             = errors.New("invalid-signing-alg")
	ErrExpiredToken                  = errors.New("expired-token")
	ErrInvalidTokenSignature         = errors.New("invalid-token-signature")
	ErrCorruptedToken                = errors.New("corrupted-token")
)
