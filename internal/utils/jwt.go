// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when any of its
// parameters is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries the standard claims:
//   - Issuer    (iss): the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-blog", 42, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || userID < 1 || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the user it was
// issued for.
//
// Validation includes the HS256 signature, the issuer, expiry, and a
// numeric subject. Tokens signed with any other algorithm are rejected.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	if userID < 1 {
		return models.Token{}, errors.New("token subject is not a valid user id")
	}
	parsed.UserID = userID

	return *parsed, nil
}
