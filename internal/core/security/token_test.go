package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Unix(1_700_000_000, 0).UTC()

func newCodec(t *testing.T, secret string) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(TokenConfig{Secret: secret})
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec_RejectsEmptySecret(t *testing.T) {
	_, err := NewTokenCodec(TokenConfig{})
	require.Error(t, err)
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := newCodec(t, "test-secret")

	for _, subject := range []string{"alice", "s_scott@localhost", "ünïcode"} {
		token, err := codec.Encode(subject, issuedAt, AccessTokenTTL)
		require.NoError(t, err)

		got, err := codec.Decode(token, issuedAt.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	codec := newCodec(t, "test-secret")
	token, err := codec.Encode("alice", issuedAt, AccessTokenTTL)
	require.NoError(t, err)

	got, err := codec.Decode(token, issuedAt.Add(AccessTokenTTL-time.Second))
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, err = codec.Decode(token, issuedAt.Add(AccessTokenTTL))
	assert.ErrorIs(t, err, ErrExpired)

	_, err = codec.Decode(token, issuedAt.Add(AccessTokenTTL+time.Hour))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTokenCodec_TamperRejection(t *testing.T) {
	codec := newCodec(t, "test-secret")
	token, err := codec.Encode("alice", issuedAt, AccessTokenTTL)
	require.NoError(t, err)
	now := issuedAt.Add(time.Minute)

	for i := 0; i < len(token); i++ {
		for bit := 0; bit < 8; bit++ {
			b := []byte(token)
			b[i] ^= 1 << bit
			sub, err := codec.Decode(string(b), now)
			if !assert.ErrorIs(t, err, ErrInvalidSignature, "byte %d bit %d", i, bit) {
				t.Fatalf("tampered token decoded to subject %q", sub)
			}
		}
	}
}

func TestTokenCodec_RejectsOtherSecret(t *testing.T) {
	token, err := newCodec(t, "secret-a").Encode("alice", issuedAt, AccessTokenTTL)
	require.NoError(t, err)

	_, err = newCodec(t, "secret-b").Decode(token, issuedAt)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := newCodec(t, "test-secret")
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = codec.Decode(hs512, issuedAt)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = codec.Decode(none, issuedAt)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenCodec_MalformedInput(t *testing.T) {
	codec := newCodec(t, "test-secret")
	for _, in := range []string{"", "not-a-token", "a.b.c", "a.b"} {
		_, err := codec.Decode(in, issuedAt)
		assert.ErrorIs(t, err, ErrInvalidSignature, "input %q", in)
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	codec := newCodec(t, "test-secret")
	token, err := codec.Encode("", issuedAt, AccessTokenTTL)
	require.NoError(t, err)

	_, err = codec.Decode(token, issuedAt)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestTokenCodec_MissingExpiryIsRejected(t *testing.T) {
	codec := newCodec(t, "test-secret")
	token, err := jwt.NewWithClaims(signingMethod, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode(token, issuedAt)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
