package controller

import (
	"errors"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/serverutils"
	"startup-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	UpsertProfile(ctx *fiber.Ctx) error
	UploadPicture(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IUserService
}

func NewProfileController(service service.IUserService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/profile/v1", authGuard)
	h.Get("/", c.GetProfile)
	h.Put("/", c.UpsertProfile)
	h.Post("/picture", c.UploadPicture)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved", res))
}

func (c *profileController) UpsertProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.UpsertBusinessProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpsertProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

func (c *profileController) UploadPicture(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fileHeader, err := ctx.FormFile("picture")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "picture file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.UploadProfilePicture(ctx.Context(), userId, fileHeader.Filename, file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile picture updated", res))
}
