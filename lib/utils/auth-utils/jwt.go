package authutils

import (
	"labourlink-backend/config"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetToken mints an access token with the same claims the identity gateway issues.
func GetToken(userID, phone string) (tokenString string, err error) {
	return GetTokenWithSecret(config.Conf.Auth.JWTSecret, time.Second*time.Duration(config.Conf.Auth.JWTExpireInSec), userID, phone)
}

func GetTokenWithSecret(secret string, expire time.Duration, userID, phone string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"phone": phone,
		"exp":   time.Now().Add(expire).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(GetClaims(ctx), "sub")
}

func GetPhone(ctx *fiber.Ctx) string {
	return claimString(GetClaims(ctx), "phone")
}

func claimString(claims jwt.MapClaims, key string) string {
	if value, exist := claims[key]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
