// Package authtoken issues and verifies the HS256 access tokens accepted by the jwt auth driver.
package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

const Issuer = "mutual-backend"

var ErrInvalidToken = errors.New("invalid access token")

// Claims carries the user the token was issued for.
type Claims struct {
	UserID domain.UserID `json:"user_id"`
	jwt.RegisteredClaims
}

// Issue signs a token for userID that expires after ttl.
func Issue(signingKey []byte, userID domain.UserID, now time.Time, ttl time.Duration) (string, error) {
	if userID.IsAnonymous() {
		return "", fmt.Errorf("cannot issue a token for user id [%d]", userID)
	}

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// Verify checks the signature, issuer and expiry of raw and returns the user it names.
func Verify(signingKey []byte, raw string) (domain.UserID, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Minute),
	)

	var claims Claims
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return signingKey, nil
	}); err != nil {
		return domain.AnonymousUserID, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID.IsAnonymous() {
		return domain.AnonymousUserID, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return claims.UserID, nil
}
