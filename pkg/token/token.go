package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrMalformed is returned when the token does not have three segments or
	// its payload cannot be decoded.
	ErrMalformed = errors.New("token: malformed token")
)

// Claims is the decoded payload of a bearer credential.
type Claims struct {
	Subject  string `json:"sub"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IssuedAt int64  `json:"iat"`
	// ExpiresAt is seconds since the Unix epoch.
	ExpiresAt int64 `json:"exp"`
}

// Expired reports whether the claims are expired at the given wall-clock time.
// ExpiresAt is in seconds, so the comparison converts now accordingly instead
// of comparing against milliseconds.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt <= now.Unix()
}

// Decode extracts the claims from the middle segment of a three-segment
// bearer token. The signature segment is NOT verified: the only authority of
// truth is the expiry claim. This trust model mirrors the consuming client
// and is unsuitable for real authorization without a server-side signature
// check.
func Decode(tok string) (Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return Claims{}, ErrMalformed
	}

	raw, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, errors.Join(ErrMalformed, err)
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return Claims{}, errors.Join(ErrMalformed, err)
	}
	return claims, nil
}

// Mint issues a self-signed mock token for the given identity, expiring after
// ttl. The signature segment is a placeholder; consumers only decode the
// payload.
func Mint(subject, email, role string, ttl time.Duration) string {
	now := time.Now()
	header := encodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))

	payload, _ := json.Marshal(Claims{
		Subject:   subject,
		Email:     email,
		Role:      role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	})

	signature := encodeSegment([]byte("mock_signature"))
	return header + "." + encodeSegment(payload) + "." + signature
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeSegment accepts both raw-URL (JWT standard) and padded standard
// base64, since backends and browser btoa() disagree on the alphabet.
func decodeSegment(s string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.StdEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, errors.New("invalid base64 segment")
}
