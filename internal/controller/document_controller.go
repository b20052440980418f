package controller

import (
	"errors"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/serverutils"
	"startup-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListGenerated(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SaveConversation(ctx *fiber.Ctx) error
	ListSaved(ctx *fiber.Ctx) error
	GetSaved(ctx *fiber.Ctx) error
	DownloadSaved(ctx *fiber.Ctx) error
	DeleteSaved(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/documents/v1", authGuard)
	h.Post("/", c.Upload)
	h.Get("/", c.List)
	h.Get("/generated", c.ListGenerated)
	h.Post("/saved", c.SaveConversation)
	h.Get("/saved", c.ListSaved)
	h.Get("/saved/:id", c.GetSaved)
	h.Get("/saved/:id/download", c.DownloadSaved)
	h.Delete("/saved/:id", c.DeleteSaved)
	h.Get("/:id/download", c.Download)
	h.Delete("/:id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	res, err := c.service.Upload(ctx.Context(), userId, fileHeader.Filename, mimeType, fileHeader.Size, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document uploaded", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Documents retrieved", res))
}

func (c *documentController) ListGenerated(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.ListGenerated(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Generated documents retrieved", res))
}

func (c *documentController) Download(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid document id"))
	}

	doc, file, err := c.service.Download(ctx.Context(), userId, docId)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, doc.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return ctx.SendStream(file)
}

func (c *documentController) SaveConversation(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.SaveConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.SessionId == uuid.Nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "session_id is required"))
	}

	res, err := c.service.SaveConversation(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation saved", res))
}

func (c *documentController) ListSaved(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.ListSaved(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Saved documents retrieved", res))
}

func (c *documentController) GetSaved(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid document id"))
	}

	res, err := c.service.GetSaved(ctx.Context(), userId, docId)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Saved document retrieved", res))
}

// DownloadSaved serves the transcript as a plain text file.
func (c *documentController) DownloadSaved(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid document id"))
	}

	res, err := c.service.GetSaved(ctx.Context(), userId, docId)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Title+`.txt"`)
	return ctx.SendString(res.Content)
}

func (c *documentController) DeleteSaved(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid document id"))
	}

	if err := c.service.DeleteSaved(ctx.Context(), userId, docId); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[interface{}]("Saved document deleted", nil))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	docId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "invalid document id"))
	}

	if err := c.service.Delete(ctx.Context(), userId, docId); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[interface{}]("Document deleted", nil))
}
