package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. These follow the OWASP minimum recommendation for
// interactive logins.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

// DefaultSecretSize is the number of random bytes in a generated client
// secret before encoding (256 bits of entropy).
const DefaultSecretSize = 32

// ErrSecretMismatch is returned by VerifySecret when the presented secret
// does not match the stored hash.
var ErrSecretMismatch = errors.New("cryptox: secret does not match")

// GenerateSecret returns a URL-safe secret encoding n cryptographically
// secure random bytes (base64url, no padding). The result only contains
// characters from [A-Za-z0-9_-].
func GenerateSecret(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("cryptox: secret size must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashSecret hashes a plaintext secret with Argon2id using a fresh random
// salt and returns a PHC-format string. Two calls with the same input
// produce different outputs; callers must compare with VerifySecret, never
// with string equality.
func HashSecret(secret string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret+GetPepper()), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifySecret checks a plaintext secret against a PHC-format Argon2id hash
// in constant time with respect to the secret. A malformed hash string
// yields an error, never a panic.
func VerifySecret(secret, encoded string) error {
	salt, expected, params, err := parsePHC(encoded)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(secret+GetPepper()),
		salt,
		params.iterations,
		params.memory,
		params.parallelism,
		uint32(len(expected)), // #nosec G115 - hash length is bounded by the encoding
	)

	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrSecretMismatch
	}
	return nil
}

type phcParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// parsePHC splits a "$argon2id$v=19$m=..,t=..,p=..$salt$hash" string into its
// salt, raw hash, and cost parameters.
func parsePHC(encoded string) ([]byte, []byte, phcParams, error) {
	var params phcParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, nil, params, errors.New("cryptox: invalid hash encoding")
	}
	if parts[1] != "argon2id" {
		return nil, nil, params, errors.New("cryptox: unsupported hash algorithm")
	}
	if parts[2] != "v=19" {
		return nil, nil, params, errors.New("cryptox: unsupported argon2 version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return nil, nil, params, fmt.Errorf("cryptox: invalid hash parameters: %w", err)
	}
	if params.memory == 0 || params.iterations == 0 || params.parallelism == 0 {
		return nil, nil, params, errors.New("cryptox: invalid hash parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("cryptox: invalid salt encoding: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("cryptox: invalid hash encoding: %w", err)
	}
	if len(hash) == 0 {
		return nil, nil, params, errors.New("cryptox: empty hash")
	}

	return salt, hash, params, nil
}
