package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smart-trolley-be/internal/dto"
	"smart-trolley-be/internal/pkg/serverutils"
	"smart-trolley-be/internal/service"
)

type IMapController interface {
	RegisterRoutes(r fiber.Router)
	GetLayout(ctx *fiber.Ctx) error
	UpdatePosition(ctx *fiber.Ctx) error
}

type mapController struct {
	mapService service.IMapService
}

func NewMapController(mapService service.IMapService) IMapController {
	return &mapController{
		mapService: mapService,
	}
}

func (c *mapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/map")
	h.Get("/layout", c.GetLayout)
	h.Post("/position", c.UpdatePosition)
}

func (c *mapController) GetLayout(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Store layout", c.mapService.GetLayout(ctx.Context())))
}

func (c *mapController) UpdatePosition(ctx *fiber.Ctx) error {
	var req dto.UpdatePositionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.mapService.UpdatePosition(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Position updated", res))
}
