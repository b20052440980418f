package controller

import (
	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/serverutils"
	"startup-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	RefineIdea(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type publicController struct {
	service service.IPublicChatService
}

func NewPublicController(service service.IPublicChatService) IPublicController {
	return &publicController{service: service}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public/v1")
	h.Post("/idea-refiner", c.RefineIdea)
	h.Post("/startup-chat", c.Chat)
}

func (c *publicController) RefineIdea(ctx *fiber.Ctx) error {
	var req dto.RefineIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.RefineIdea(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(fiber.StatusBadGateway, "idea refinement is temporarily unavailable"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea refined", res))
}

func (c *publicController) Chat(ctx *fiber.Ctx) error {
	var req dto.PublicChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat processed", res))
}
