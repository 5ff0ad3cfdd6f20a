package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/serverutils"
	"smart-trolley-be/internal/service"
)

type IListController interface {
	RegisterRoutes(r fiber.Router)
	GetList(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	ToggleItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
}

type listController struct {
	listService service.IListService
}

func NewListController(listService service.IListService) IListController {
	return &listController{
		listService: listService,
	}
}

func (c *listController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/list")
	h.Get("/:sessionId", c.GetList)
	h.Post("/items", c.AddItem)
	h.Patch("/items/:id/toggle", c.ToggleItem)
	h.Delete("/items/:id", c.RemoveItem)
}

func (c *listController) GetList(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session ID"))
	}

	res, err := c.listService.GetList(ctx.Context(), sessionId)
	if err != nil {
		return mapListError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Shopping list", res))
}

func (c *listController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddListItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.listService.AddItem(ctx.Context(), &req)
	if err != nil {
		return mapListError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Item added", res))
}

func (c *listController) ToggleItem(ctx *fiber.Ctx) error {
	sessionId, itemId, err := parseSessionAndItem(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.listService.ToggleItem(ctx.Context(), sessionId, itemId)
	if err != nil {
		return mapListError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Item toggled", res))
}

func (c *listController) RemoveItem(ctx *fiber.Ctx) error {
	sessionId, itemId, err := parseSessionAndItem(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.listService.RemoveItem(ctx.Context(), sessionId, itemId); err != nil {
		return mapListError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Item removed", nil))
}

func parseSessionAndItem(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	sessionId, err := uuid.Parse(ctx.Query("session_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid or missing session_id query parameter")
	}
	itemId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid item ID")
	}
	return sessionId, itemId, nil
}

func mapListError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
	case errors.Is(err, service.ErrItemNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Item not found"))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}
