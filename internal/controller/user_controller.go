package controller

import (
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetUser(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	CompleteSetup(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	a := r.Group("/auth")
	a.Get("/user", serverutils.RequireAuthenticated, c.GetUser)
	a.Get("/profile", serverutils.RequireAuthenticated, c.GetProfile)

	u := r.Group("/user")
	u.Post("/setup", serverutils.RequireAuthenticated, c.CompleteSetup)
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	res, err := c.service.GetUser(ctx.UserContext(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.UserContext(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *userController) CompleteSetup(ctx *fiber.Ctx) error {
	if err := c.service.CompleteSetup(ctx.UserContext(), serverutils.UserID(ctx)); err != nil {
		return err
	}
	return ctx.JSON(dto.SuccessResponse{Success: true})
}
