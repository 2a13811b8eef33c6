package cli

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vanda-app/vanda-client/internal/client/models"
)

func TestTokenExpiry_OpaqueTokenIsZero(t *testing.T) {
	require.True(t, tokenExpiry("tok-123").IsZero())
	require.True(t, tokenExpiry("").IsZero())
}

func TestTokenExpiry_JWTExpIsDecoded(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got := tokenExpiry(signed)
	require.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiry_JWTWithoutExpIsZero(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	require.True(t, tokenExpiry(signed).IsZero())
}

func TestWhoami_States(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		app, out := newTestApp(t, &fakeAPI{})
		app.Whoami()
		require.Contains(t, out.String(), "Not signed in.")
	})

	t.Run("signed in with profile", func(t *testing.T) {
		fa := &fakeAPI{
			AuthenticateRet: "tok-123",
			FetchProfileRet: &models.Profile{
				ID: 1, FirstName: "Ama", LastName: "Ndongo",
				Phone: "600000000", Verified: true, Roles: []string{"guest", "host"},
			},
		}
		app, out := newTestApp(t, fa)
		stubInputs(t, []string{"600000000"}, []byte("secret"))
		require.NoError(t, app.Login(context.Background()))

		app.Whoami()
		require.Contains(t, out.String(), "Ama Ndongo")
		require.Contains(t, out.String(), "guest, host")
	})

	t.Run("degraded session hints at refresh", func(t *testing.T) {
		fa := &fakeAPI{
			AuthenticateRet: "tok-123",
			FetchProfileErr: context.DeadlineExceeded,
		}
		app, out := newTestApp(t, fa)
		stubInputs(t, []string{"600000000"}, []byte("secret"))
		require.NoError(t, app.Login(context.Background()))

		app.Whoami()
		require.Contains(t, out.String(), "profile not loaded")
	})
}
