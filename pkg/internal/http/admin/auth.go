package admin

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// authMiddleware is the boundary shim to the external authentication
// service: it only verifies that the caller holds an administrator
// capability, everything behind it can assume an authorized operator.
func authMiddleware(c *fiber.Ctx) error {
	tokenString := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(tokenString) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "missing administrator token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid administrator token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["adm"] != true {
		return fiber.NewError(fiber.StatusForbidden, "administrator capability required")
	}

	if subject, err := claims.GetSubject(); err == nil {
		c.Locals("operator", subject)
	}

	return c.Next()
}
