package controller

import (
	"time"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	oauthStateCookieName = "swadesh_oauth_state"
	oauthStateTTL        = 10 * time.Minute
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	LogoutJSON(ctx *fiber.Ctx) error
}

type authController struct {
	service      service.IAuthService
	logger       logger.ILogger
	clientURL    string
	secureCookie bool
}

func NewAuthController(service service.IAuthService, clientURL string, secureCookie bool, log logger.ILogger) IAuthController {
	return &authController{
		service:      service,
		logger:       log,
		clientURL:    clientURL,
		secureCookie: secureCookie,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/login", c.Login)
	r.Get("/logout", c.Logout)

	h := r.Group("/auth")
	h.Get("/callback/:provider", c.Callback)
	h.Get("/logout", c.LogoutJSON)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	if !c.service.GoogleEnabled() {
		res, err := c.service.DevLogin(ctx.UserContext())
		if err != nil {
			return err
		}
		serverutils.SetSessionCookie(ctx, res.Token, res.ExpiresAt, c.secureCookie)
		return ctx.Redirect(c.clientURL)
	}

	state := uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(oauthStateTTL),
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(c.service.LoginURL(state))
}

func (c *authController) Callback(ctx *fiber.Ctx) error {
	if ctx.Params("provider") != "google" || !c.service.GoogleEnabled() {
		return apperror.NotFound("Unknown auth provider")
	}

	expected := ctx.Cookies(oauthStateCookieName)
	c.clearStateCookie(ctx)

	if expected == "" || ctx.Query("state") != expected {
		c.logger.Warn("AUTH", "OAuth state mismatch", nil)
		return ctx.Redirect(c.clientURL + "?error=auth_failed")
	}

	code := ctx.Query("code")
	if code == "" {
		c.logger.Warn("AUTH", "OAuth callback without code", map[string]interface{}{"error": ctx.Query("error")})
		return ctx.Redirect(c.clientURL + "?error=auth_failed")
	}

	res, err := c.service.HandleGoogleCallback(ctx.UserContext(), code)
	if err != nil {
		c.logger.Error("AUTH", "Google sign-in failed", map[string]interface{}{"error": err.Error()})
		return ctx.Redirect(c.clientURL + "?error=auth_failed")
	}

	serverutils.SetSessionCookie(ctx, res.Token, res.ExpiresAt, c.secureCookie)
	return ctx.Redirect(c.clientURL)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.endSession(ctx)
	return ctx.Redirect(c.clientURL)
}

func (c *authController) LogoutJSON(ctx *fiber.Ctx) error {
	c.endSession(ctx)
	return ctx.JSON(dto.SuccessResponse{Success: true})
}

// endSession never fails the request; the cookie is cleared either way.
func (c *authController) endSession(ctx *fiber.Ctx) {
	if token := serverutils.CredentialsFrom(ctx).SessionToken; token != "" {
		if err := c.service.Logout(ctx.UserContext(), token); err != nil {
			c.logger.Warn("AUTH", "Failed to revoke session", map[string]interface{}{"error": err.Error()})
		}
	}
	serverutils.ClearSessionCookie(ctx, c.secureCookie)
}

func (c *authController) clearStateCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.secureCookie,
	})
}
