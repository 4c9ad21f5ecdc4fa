package utils // package utils provides helper functions for token creation and hashing

import (
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Claims are the claims carried by staff access tokens.
type Claims struct {
    Role string `json:"role"`
    jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT whose subject is the staff
// user name.  ttlMin is the lifetime in minutes.
func NewAccessToken(secret, subject, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := Claims{
        Role: role,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   subject,
            ExpiresAt: jwt.NewNumericDate(exp),
            IssuedAt:  jwt.NewNumericDate(now),
        },
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies an HS256 token signed with secret and returns
// its claims.
func ParseAccessToken(secret, raw string) (*Claims, error) {
    claims := &Claims{}
    _, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    }, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
    if err != nil {
        return nil, err
    }
    return claims, nil
}
