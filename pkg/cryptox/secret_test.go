package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "newswire-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestGenerateSecret(t *testing.T) {
	t.Run("encodes requested byte length", func(t *testing.T) {
		secret, err := GenerateSecret(DefaultSecretSize)
		require.NoError(t, err)
		// 32 bytes -> 43 chars of unpadded base64url
		require.Len(t, secret, 43)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateSecret(0)
		require.Error(t, err)
		_, err = GenerateSecret(-1)
		require.Error(t, err)
	})

	t.Run("charset is URL safe", func(t *testing.T) {
		const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
		for range 50 {
			secret, err := GenerateSecret(DefaultSecretSize)
			require.NoError(t, err)
			for _, c := range secret {
				require.Contains(t, allowed, string(c))
			}
		}
	})

	t.Run("unique under load", func(t *testing.T) {
		const n = 1000
		seen := make(map[string]struct{}, n)
		for range n {
			secret, err := GenerateSecret(DefaultSecretSize)
			require.NoError(t, err)
			_, dup := seen[secret]
			require.False(t, dup, "generated duplicate secret")
			seen[secret] = struct{}{}
		}
	})
}

func TestHashSecret(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, secret := range []string{"", "s3cret", strings.Repeat("a", 200)} {
			hash, err := HashSecret(secret)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
			require.NoError(t, VerifySecret(secret, hash))
		}
	})

	t.Run("same input hashes differently per call", func(t *testing.T) {
		h1, err := HashSecret("repeatable")
		require.NoError(t, err)
		h2, err := HashSecret("repeatable")
		require.NoError(t, err)
		require.NotEqual(t, h1, h2, "salt must be randomized per call")

		require.NoError(t, VerifySecret("repeatable", h1))
		require.NoError(t, VerifySecret("repeatable", h2))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		hash, err := HashSecret("correct")
		require.NoError(t, err)
		require.ErrorIs(t, VerifySecret("incorrect", hash), ErrSecretMismatch)
		require.ErrorIs(t, VerifySecret("", hash), ErrSecretMismatch)
	})
}

func TestVerifySecretMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=13$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
		{"bad params", "$argon2id$v=19$m=a,t=b,p=c$c2FsdA$aGFzaA"},
		{"zero params", "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
		{"empty hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySecret("anything", tt.encoded)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrSecretMismatch)
		})
	}
}
