package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 30 * 24 * time.Hour

const principalKey = "user"

// Principal is the authenticated user attached to the request context.
// Only the fields safe to echo back to clients are loaded.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PrincipalStore loads the principal behind a verified token.
type PrincipalStore interface {
	FindPrincipalByID(ctx context.Context, id string) (*Principal, error)
}

// GenerateJWT signs a session token bound to the user id.
func GenerateJWT(secret []byte, userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(SessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Middleware authenticates Bearer requests. On success the principal is
// stored in Locals for the rest of the chain.
func Middleware(secret []byte, store PrincipalStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized.")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}

		rawID, ok := claims["user_id"].(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}
		if _, err := uuid.Parse(rawID); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}

		principal, err := store.FindPrincipalByID(c.UserContext(), rawID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Server Error")
		}
		if principal == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token.")
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// PrincipalFromCtx returns the principal stored by Middleware, or nil when
// the request never passed authentication.
func PrincipalFromCtx(c *fiber.Ctx) *Principal {
	if p, ok := c.Locals(principalKey).(*Principal); ok {
		return p
	}
	return nil
}

// SetPrincipal attaches a principal directly, used by tests to drive
// authenticated chains without minting tokens.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}
