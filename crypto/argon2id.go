// Package crypto guards the deck editor: argon2id for the editor password and
// HS256 tokens for the session cookie.
package crypto

import (
	"fmt"

	"github.com/alexedwards/argon2id"

	"magecards/domain"
)

type Argon2idHasher struct {
	params *argon2id.Params
}

// NewArgon2idHasher takes memory in KiB.
func NewArgon2idHasher(iterations, memory, keyLength, saltLength uint32, parallelism uint8) *Argon2idHasher {
	return &Argon2idHasher{
		params: &argon2id.Params{
			Memory:      memory,
			Iterations:  iterations,
			Parallelism: parallelism,
			SaltLength:  saltLength,
			KeyLength:   keyLength,
		},
	}
}

// NewDefaultHasher uses argon2id.DefaultParams. The parameters are encoded in
// every hash, so any hasher can Compare against it.
func NewDefaultHasher() *Argon2idHasher {
	p := *argon2id.DefaultParams
	return &Argon2idHasher{params: &p}
}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.UnexpectedPasswordHashingError, err)
	}
	return hash, nil
}

// Compare reports whether password matches hash. A malformed hash is an error,
// a wrong password is not.
func (h *Argon2idHasher) Compare(hash, password string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.UnexpectedPasswordHashComparisonError, err)
	}
	return match, nil
}
