package controller

import (
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type memoryController struct {
	service service.IMemoryService
}

func NewMemoryController(service service.IMemoryService) IMemoryController {
	return &memoryController{service: service}
}

func (c *memoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memories", serverutils.RequireAuthenticated)
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *memoryController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext(), serverutils.UserID(ctx), ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *memoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMemoryRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *memoryController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateMemoryRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), serverutils.UserID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *memoryController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), serverutils.UserID(ctx), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(dto.SuccessResponse{Success: true})
}
