package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// sign mints an HS256 token; the key is irrelevant since decoding never
// verifies signatures.
func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("identity claims", func(t *testing.T) {
		raw := sign(t, jwt.MapClaims{
			jwtx.ClaimNameIdentifier: "u-1",
			jwtx.ClaimEmail:          "alice@example.com",
			jwtx.ClaimMobilePhone:    "+905551112233",
			jwtx.ClaimName:           "alice",
			jwtx.ClaimRole:           []string{"Customer", "VIP"},
			"exp":                    time.Now().Add(time.Hour).Unix(),
		})

		claims, err := jwtx.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, "u-1", claims.NameIdentifier)
		require.Equal(t, "alice@example.com", claims.Email)
		require.Equal(t, "+905551112233", claims.MobilePhone)
		require.Equal(t, "alice", claims.Name)
		require.Equal(t, jwtx.RoleClaim{"Customer", "VIP"}, claims.Roles)
		require.True(t, claims.HasRole("VIP"))
		require.False(t, claims.HasRole("Admin"))
	})

	t.Run("single role as string", func(t *testing.T) {
		raw := sign(t, jwt.MapClaims{jwtx.ClaimRole: "Admin"})

		claims, err := jwtx.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, jwtx.RoleClaim{"Admin"}, claims.Roles)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.Decode("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := jwtx.Decode("")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestIsExpired(t *testing.T) {
	t.Parallel()
	now := time.Now()

	t.Run("past exp", func(t *testing.T) {
		raw := sign(t, jwt.MapClaims{"exp": now.Add(-10 * time.Minute).Unix()})
		require.True(t, jwtx.IsExpired(raw, now))
	})

	t.Run("future exp", func(t *testing.T) {
		raw := sign(t, jwt.MapClaims{"exp": now.Add(10 * time.Minute).Unix()})
		require.False(t, jwtx.IsExpired(raw, now))
	})

	t.Run("no exp", func(t *testing.T) {
		raw := sign(t, jwt.MapClaims{"sub": "u-1"})
		require.False(t, jwtx.IsExpired(raw, now))
	})

	t.Run("malformed degrades to not expired", func(t *testing.T) {
		require.False(t, jwtx.IsExpired("a.b.c", now))
		require.False(t, jwtx.IsExpired("", now))
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.NoError(t, claims.ValidateExpiry())
	})
}
