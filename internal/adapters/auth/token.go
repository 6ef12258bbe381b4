package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"affiliateedge/internal/domain"
)

type unsubscribeClaims struct {
	jwt.RegisteredClaims
	Site string `json:"site"`
}

type unsubscribeTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewUnsubscribeTokenCodec returns an UnsubscribeTokenCodec that signs
// tokens with HS256. Tokens carry the subscriber email as subject and the
// tenant site as a claim, and expire after ttl.
func NewUnsubscribeTokenCodec(secret string, ttl time.Duration) domain.UnsubscribeTokenCodec {
	return &unsubscribeTokenCodec{secret: []byte(secret), ttl: ttl}
}

func (c *unsubscribeTokenCodec) Issue(email, site string) (string, error) {
	now := time.Now()
	claims := unsubscribeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Site: site,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *unsubscribeTokenCodec) Verify(tokenString string) (email, site string, err error) {
	claims := &unsubscribeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrInvalidToken
	}
	if claims.Subject == "" || claims.Site == "" {
		return "", "", domain.ErrInvalidToken
	}
	return claims.Subject, claims.Site, nil
}
