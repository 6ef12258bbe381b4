package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"affiliateedge/internal/domain"
)

func TestUnsubscribeTokenCodec_RoundTrip(t *testing.T) {
	codec := NewUnsubscribeTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue("alice@example.com", "swankyboyz")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, site, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
	require.Equal(t, "swankyboyz", site)
}

func TestUnsubscribeTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewUnsubscribeTokenCodec("secret-a", time.Hour)
	verifier := NewUnsubscribeTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue("alice@example.com", "swankyboyz")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUnsubscribeTokenCodec_Expired(t *testing.T) {
	codec := NewUnsubscribeTokenCodec("test-secret", -time.Minute)

	token, err := codec.Issue("alice@example.com", "swankyboyz")
	require.NoError(t, err)

	_, _, err = codec.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestUnsubscribeTokenCodec_Garbage(t *testing.T) {
	codec := NewUnsubscribeTokenCodec("test-secret", time.Hour)
	_, _, err := codec.Verify("not-a-jwt")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
