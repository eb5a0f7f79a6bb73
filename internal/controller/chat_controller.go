package controller

import (
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/service"
	"swadesh-ai-be/pkg/persona"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	VoiceChat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Post("/voice-chat", c.VoiceChat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	return c.reply(ctx, persona.ModeChat)
}

func (c *chatController) VoiceChat(ctx *fiber.Ctx) error {
	return c.reply(ctx, persona.ModeVoice)
}

func (c *chatController) reply(ctx *fiber.Ctx, mode persona.Mode) error {
	var req dto.ChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.UserContext(), serverutils.IdentityFrom(ctx), &req, mode)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
