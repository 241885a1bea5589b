package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/charley4805/project-pretzel/internal/dto"
	"github.com/charley4805/project-pretzel/internal/pkg/serverutils"
	"github.com/charley4805/project-pretzel/internal/service"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/assistant")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Get("/history", c.History)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project id"))
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.assistantService.Chat(ctx.Context(), projectId, userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotProjectMember) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "You are not a member of this project"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assistant reply", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project id"))
	}

	res, err := c.assistantService.GetHistory(ctx.Context(), projectId, userId)
	if err != nil {
		if errors.Is(err, service.ErrNotProjectMember) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "You are not a member of this project"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}
