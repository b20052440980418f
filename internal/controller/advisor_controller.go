package controller

import (
	"errors"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/serverutils"
	"startup-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	MainDashboardChat(ctx *fiber.Ctx) error
	SpecialistChat(ctx *fiber.Ctx) error
	GenerateStartupKit(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	GetSessionHistory(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
}

type advisorController struct {
	advisorService service.IAdvisorService
	kitService     service.IKitService
	sessionService service.ISessionService
}

func NewAdvisorController(advisorService service.IAdvisorService, kitService service.IKitService, sessionService service.ISessionService) IAdvisorController {
	return &advisorController{
		advisorService: advisorService,
		kitService:     kitService,
		sessionService: sessionService,
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/bots/v1", authGuard)
	h.Post("/main-dashboard", c.MainDashboardChat)
	h.Post("/advisor/:domain", c.SpecialistChat)
	h.Post("/startup-kit", c.GenerateStartupKit)
	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:id/responses", c.GetSessionHistory)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Post("/feedback", c.SubmitFeedback)
}

func (c *advisorController) MainDashboardChat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.advisorService.DashboardChat(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat processed", res))
}

func (c *advisorController) SpecialistChat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.advisorService.SpecialistChat(ctx.Context(), userId, ctx.Params("domain"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAdvisor):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat processed", res))
}

func (c *advisorController) GenerateStartupKit(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.kitService.Generate(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrProfileIncomplete) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Startup kit generated", res))
}

func (c *advisorController) ListSessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.sessionService.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", res))
}

func (c *advisorController) GetSessionHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid session id"))
	}

	res, err := c.sessionService.GetSessionHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session history retrieved", res))
}

func (c *advisorController) DeleteSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid session id"))
	}

	if err := c.sessionService.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[interface{}]("Session deleted", nil))
}

func (c *advisorController) SubmitFeedback(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.ResponseFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.sessionService.SubmitFeedback(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, service.ErrResponseNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[interface{}]("Feedback recorded", nil))
}
