// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testIterations keeps the tests fast; production uses the configured count.
const testIterations = 1000

func TestHashPassword_Format(t *testing.T) {
	encoded, err := HashPassword("s3cret", testIterations)
	require.NoError(t, err)

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "pbkdf2:sha256:1000", parts[0])
	assert.Len(t, parts[1], passwordSaltLen)
	assert.Len(t, parts[2], 64)
	assert.NotContains(t, encoded, "s3cret")
}

func TestHashPassword_SaltIsRandomPerCall(t *testing.T) {
	a, err := HashPassword("same", testIterations)
	require.NoError(t, err)
	b, err := HashPassword("same", testIterations)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPassword_InvalidIterations(t *testing.T) {
	_, err := HashPassword("pw", 0)
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse", testIterations)
	require.NoError(t, err)

	ok, err := VerifyPassword(encoded, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(encoded, "battery staple")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerifyPassword_KnownVector checks a hash in the same encoding produced
// elsewhere: PBKDF2-HMAC-SHA256("password", "salt", 1, 32).
func TestVerifyPassword_KnownVector(t *testing.T) {
	const encoded = "pbkdf2:sha256:1$salt$120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"

	ok, err := VerifyPassword(encoded, "password")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []string{
		"",
		"plaintext",
		"pbkdf2:sha256:1000$onlysalt",
		"md5:1000$salt$abcd",
		"pbkdf2:sha256$salt$abcd",
		"pbkdf2:sha256:zero$salt$abcd",
		"pbkdf2:sha256:-5$salt$abcd",
		"pbkdf2:sha256:1000$salt$not-hex",
		"pbkdf2:sha2567:1000$salt$abcd",
	}

	for _, encoded := range tests {
		t.Run(encoded, func(t *testing.T) {
			ok, err := VerifyPassword(encoded, "pw")
			assert.ErrorIs(t, err, ErrMalformedPasswordHash)
			assert.False(t, ok)
		})
	}
}
