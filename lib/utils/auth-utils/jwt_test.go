package authutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGetTokenWithSecret(t *testing.T) {
	t.Run(`token carries identity claims`, func(t *testing.T) {
		tokenStr, err := GetTokenWithSecret("secret", time.Hour, "user-1", "+919800000001")
		require.NoError(t, err)

		token, err := jwt.ParseWithClaims(tokenStr, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user-1", claimString(claims, "sub"))
		require.Equal(t, "+919800000001", claimString(claims, "phone"))
		require.NotContains(t, claims, "role")
	})
	t.Run(`wrong secret is rejected`, func(t *testing.T) {
		tokenStr, err := GetTokenWithSecret("secret", time.Hour, "user-1", "")
		require.NoError(t, err)
		_, err = jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte("other"), nil
		})
		require.Error(t, err)
	})
}
