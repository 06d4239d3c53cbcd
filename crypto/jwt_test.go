package crypto_test

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magecards/crypto"
	"magecards/domain"
)

const testKey = "a key long enough for hs256 signing in tests"

func TestJWTManager_Generate(t *testing.T) {
	t.Parallel()
	m := crypto.NewJWTManager(testKey, time.Hour)
	now := time.Now()

	token, err := m.Generate("redaktor", now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	head, _ := base64.RawURLEncoding.DecodeString(parts[0])
	body, _ := base64.RawURLEncoding.DecodeString(parts[1])
	sig, _ := base64.RawURLEncoding.DecodeString(parts[2])

	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(head))
	assert.JSONEq(t, fmt.Sprintf(`{"editor":"redaktor","iat":%d,"exp":%d}`, now.Unix(), now.Add(time.Hour).Unix()), string(body))
	assert.Len(t, sig, 32)
}

func TestJWTManager_Verify(t *testing.T) {
	t.Parallel()
	m := crypto.NewJWTManager(testKey, 2*time.Hour)
	now := time.Now()

	fresh, err := m.Generate("redaktor", now.Add(-time.Hour))
	require.NoError(t, err)
	expired, err := m.Generate("redaktor", now.Add(-3*time.Hour))
	require.NoError(t, err)
	foreign, err := crypto.NewJWTManager("some other key entirely", time.Hour).Generate("redaktor", now)
	require.NoError(t, err)

	parts := strings.Split(fresh, ".")
	// {"alg":"ES512","typ":"JWT"} and {"alg":"none","typ":"JWT"}
	es512 := "eyJhbGciOiJFUzUxMiIsInR5cCI6IkpXVCJ9." + parts[1] + "." + parts[2]
	none := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." + parts[1] + "."

	testCases := []struct {
		desc   string
		token  string
		editor string
		err    error
	}{
		{desc: "valid", token: fresh, editor: "redaktor"},
		{desc: "expired", token: expired, err: domain.ErrExpiredToken},
		{desc: "other key", token: foreign, err: domain.ErrInvalidTokenSignature},
		{desc: "tampered signature", token: fresh + "x", err: domain.ErrInvalidTokenSignature},
		{desc: "asymmetric alg", token: es512, err: domain.ErrInvalidSigningAlg},
		{desc: "none alg", token: none, err: domain.ErrInvalidSigningAlg},
		{desc: "garbage", token: "stemretmretm", err: domain.ErrCorruptedToken},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			editor, err := m.Verify(tc.token)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.editor, editor)
		})
	}
}
