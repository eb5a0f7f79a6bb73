package serverutils

import (
	"context"
	"strings"
	"time"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/identity"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookieName = "swadesh_session"
	GuestModeHeader   = "X-Guest-Mode"

	identityLocalsKey = "identity"
	resolverLocalsKey = "identity.resolve"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, creds identity.Credentials) identity.Identity
}

// CredentialsFrom collects the raw identity inputs of a request.
func CredentialsFrom(c *fiber.Ctx) identity.Credentials {
	creds := identity.Credentials{
		SessionToken: c.Cookies(SessionCookieName),
	}

	switch strings.ToLower(strings.TrimSpace(c.Get(GuestModeHeader))) {
	case "true", "1", "yes":
		creds.GuestMode = true
	}

	if creds.SessionToken == "" {
		if auth := c.Get(fiber.HeaderAuthorization); len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
			creds.SessionToken = strings.TrimSpace(auth[7:])
		}
	}
	return creds
}

// IdentityMiddleware makes the resolver available to the request. Nothing is
// looked up until a handler asks for the identity, so routes that never need
// it and requests that fail validation cost no storage reads.
func IdentityMiddleware(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(resolverLocalsKey, resolver)
		return c.Next()
	}
}

// IdentityFrom resolves the caller on first use and caches the result for the
// rest of the request. It is Anonymous when the middleware did not run.
func IdentityFrom(c *fiber.Ctx) identity.Identity {
	if id, ok := resolvedIdentity(c); ok {
		return id
	}

	resolver, ok := c.Locals(resolverLocalsKey).(IdentityResolver)
	if !ok {
		return identity.Anonymous()
	}
	id := resolver.Resolve(c.UserContext(), CredentialsFrom(c))
	c.Locals(identityLocalsKey, id)
	return id
}

func resolvedIdentity(c *fiber.Ctx) (identity.Identity, bool) {
	id, ok := c.Locals(identityLocalsKey).(identity.Identity)
	return id, ok
}

// RequireAuthenticated rejects Guest and Anonymous callers with 401.
func RequireAuthenticated(c *fiber.Ctx) error {
	if !IdentityFrom(c).IsAuthenticated() {
		return apperror.Unauthorized()
	}
	return c.Next()
}

// UserID must only be called behind RequireAuthenticated.
func UserID(c *fiber.Ctx) string {
	id, _ := IdentityFrom(c).UserID()
	return id
}

func SetSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
