// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordMethod  = "pbkdf2:sha256"
	passwordSaltLen = 16
	passwordKeyLen  = sha256.Size
)

// ErrMalformedPasswordHash is returned by [VerifyPassword] when the stored
// value does not follow the "pbkdf2:sha256:<iterations>$<salt>$<hex>" format.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword derives a PBKDF2-HMAC-SHA256 key from password using a fresh
// random salt and the given iteration count, and encodes the result as
//
//	pbkdf2:sha256:<iterations>$<salt>$<hex digest>
//
// The iteration count travels with the hash so it can be raised later
// without invalidating stored passwords.
func HashPassword(password string, iterations int) (string, error) {
	if iterations < 1 {
		return "", fmt.Errorf("invalid iteration count %d", iterations)
	}

	salt, err := randomSalt(passwordSaltLen)
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	digest := pbkdf2.Key([]byte(password), []byte(salt), iterations, passwordKeyLen, sha256.New)

	return fmt.Sprintf("%s:%d$%s$%s", passwordMethod, iterations, salt, hex.EncodeToString(digest)), nil
}

// VerifyPassword reports whether password matches the encoded hash produced
// by [HashPassword]. The digest comparison runs in constant time.
func VerifyPassword(encoded, password string) (bool, error) {
	method, rest, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, ErrMalformedPasswordHash
	}
	salt, digestHex, ok := strings.Cut(rest, "$")
	if !ok {
		return false, ErrMalformedPasswordHash
	}

	prefix, iterString, ok := strings.Cut(strings.TrimPrefix(method, passwordMethod), ":")
	if !strings.HasPrefix(method, passwordMethod) || prefix != "" || !ok {
		return false, ErrMalformedPasswordHash
	}
	iterations, err := strconv.Atoi(iterString)
	if err != nil || iterations < 1 {
		return false, ErrMalformedPasswordHash
	}

	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, ErrMalformedPasswordHash
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomSalt returns n characters drawn uniformly from saltAlphabet.
func randomSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	// 62 does not divide 256; reject the tail to keep the draw uniform.
	const limit = 256 - 256%len(saltAlphabet)
	var sb strings.Builder
	sb.Grow(n)
	for sb.Len() < n {
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(saltAlphabet[int(b)%len(saltAlphabet)])
			if sb.Len() == n {
				break
			}
		}
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}
