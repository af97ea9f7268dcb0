package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

// VehicleHandler handles HTTP requests for vehicle records.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// Get handles GET /vehicles/:id.
//
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  domain.Vehicle
// @Failure      404  {object}  errorResponse
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	v, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Create handles POST /vehicles.
//
// @Summary      Register a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replay key"
// @Param        body             body      createVehicleRequest  true   "Vehicle"
// @Success      201              {object}  domain.Vehicle
// @Failure      404              {object}  errorResponse  "Owner not found"
// @Failure      409              {object}  errorResponse  "Duplicate VIN"
// @Failure      422              {object}  errorResponse
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	v, err := h.service.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceVehicle, security.OpCreate)
	return c.JSON(http.StatusCreated, v)
}

// Update handles PUT /vehicles/:id.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Vehicle ID"
// @Param        body  body      updateVehicleRequest  true  "Fields to change"
// @Success      200   {object}  domain.Vehicle
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateVehicleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	v, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	countMutation(security.ResourceVehicle, security.OpUpdate)
	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /vehicles/:id.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id   path  int  true  "Vehicle ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(security.ResourceVehicle, security.OpDelete)
	return c.NoContent(http.StatusNoContent)
}
