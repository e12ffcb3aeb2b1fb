package token_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/pkg/token"
)

func TestMintDecode_RoundTrip(t *testing.T) {
	tok := token.Mint("1", "admin@wishcowork.com", "admin", 24*time.Hour)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	claims, err := token.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "admin@wishcowork.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.Expired(time.Now()))
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestDecode_Malformed(t *testing.T) {
	for _, tok := range []string{
		"",
		"onlyonesegment",
		"two.segments",
		"a.b.c.d",
		"!!!.???.###",
		"aGVhZGVy.bm90anNvbg.c2ln", // payload is valid base64 but not JSON
	} {
		_, err := token.Decode(tok)
		assert.ErrorIs(t, err, token.ErrMalformed, "token %q", tok)
	}
}

func TestDecode_SignatureNotVerified(t *testing.T) {
	tok := token.Mint("1", "a@b.c", "admin", time.Hour)
	parts := strings.Split(tok, ".")

	// Decode reads the payload only; a bogus signature segment is accepted.
	claims, err := token.Decode(parts[0] + "." + parts[1] + "." + "forged")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestDecode_StandardBase64Payload(t *testing.T) {
	// Browser btoa() emits padded standard base64; Decode must accept it.
	payload, err := json.Marshal(map[string]any{
		"sub": "9", "email": "x@y.z", "role": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	tok := base64.StdEncoding.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." +
		base64.StdEncoding.EncodeToString(payload) + "." +
		base64.StdEncoding.EncodeToString([]byte("sig"))

	claims, err := token.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "9", claims.Subject)
}

func TestExpired_SecondsNotMilliseconds(t *testing.T) {
	now := time.Now()

	// One second in the past: expired.
	past := token.Claims{ExpiresAt: now.Unix() - 1}
	assert.True(t, past.Expired(now))

	// One hour ahead, in seconds: valid. If the comparison mistakenly used
	// milliseconds this would be treated as long expired.
	future := token.Claims{ExpiresAt: now.Unix() + 3600}
	assert.False(t, future.Expired(now))

	// An exp stored in milliseconds would dwarf any seconds clock; make the
	// unit contract explicit.
	ms := token.Claims{ExpiresAt: now.UnixMilli()}
	assert.False(t, ms.Expired(now))
}
