package middleware

import (
	"labourlink-backend/config"
	authutils "labourlink-backend/lib/utils/auth-utils"
	apimodels "labourlink-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		// browsers cannot set headers on websocket upgrade requests
		TokenLookup: "header:Authorization,query:token",
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid or expired token"))
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			if authutils.GetUserID(ctx) == "" {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("token has no subject"))
			}
			return ctx.Next()
		},
	})
}

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetUserID(ctx)
}

func GetPhone(ctx *fiber.Ctx) string {
	return authutils.GetPhone(ctx)
}
