package controller

import (
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
}

type toolController struct {
	service service.IToolService
}

func NewToolController(service service.IToolService) IToolController {
	return &toolController{service: service}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools")
	h.Post("/document", runTool(c.service, service.DocumentTool))
	h.Post("/code", runTool(c.service, service.CodeTool))
	h.Post("/study", runTool(c.service, service.StudyTool))
	h.Post("/language", runTool(c.service, service.LanguageTool))
	h.Post("/search", runTool(c.service, service.SearchTool))
	h.Post("/image", runTool(c.service, service.ImageTool))
	h.Post("/creative", runTool(c.service, service.CreativeTool))
	h.Post("/ocr", runTool(c.service, service.OCRTool))
	h.Post("/image-gen", runTool(c.service, service.ImageGenTool))
	h.Post("/grammar", runTool(c.service, service.GrammarTool))
	h.Post("/recipe", runTool(c.service, service.RecipeTool))
	h.Post("/travel", runTool(c.service, service.TravelTool))
	h.Post("/resume", runTool(c.service, service.ResumeTool))
	h.Post("/health", runTool(c.service, service.HealthTool))
}

// runTool validates a request body of type T, renders it with build and runs it.
func runTool[T any](tools service.IToolService, build func(*T) (service.ToolInvocation, error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		req := new(T)
		if err := serverutils.ValidateRequest(ctx, req); err != nil {
			return err
		}

		inv, err := build(req)
		if err != nil {
			return err
		}

		res, err := tools.Run(ctx.UserContext(), inv)
		if err != nil {
			return err
		}
		return ctx.JSON(res)
	}
}
