package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

type OfficerHandler struct {
	service ports.OfficerService
}

func NewOfficerHandler(service ports.OfficerService) *OfficerHandler {
	return &OfficerHandler{service: service}
}

// Get handles GET /officers/:id.
//
// @Summary      Get an officer
// @Tags         officers
// @Produce      json
// @Param        id   path      int  true  "Officer ID"
// @Success      200  {object}  domain.Officer
// @Failure      404  {object}  errorResponse
// @Router       /officers/{id} [get]
func (h *OfficerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /officers.
//
// @Summary      Create an officer
// @Tags         officers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfficerRequest  true  "Officer"
// @Success      201   {object}  domain.Officer
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /officers [post]
func (h *OfficerHandler) Create(c echo.Context) error {
	var req createOfficerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	o, err := h.service.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceOfficer, security.OpCreate)
	return c.JSON(http.StatusCreated, o)
}

type VehicleOwnerHandler struct {
	service ports.VehicleOwnerService
}

func NewVehicleOwnerHandler(service ports.VehicleOwnerService) *VehicleOwnerHandler {
	return &VehicleOwnerHandler{service: service}
}

// Get handles GET /vehicle-owners/:id.
//
// @Summary      Get a vehicle owner
// @Tags         vehicle-owners
// @Produce      json
// @Param        id   path      int  true  "Vehicle owner ID"
// @Success      200  {object}  domain.VehicleOwner
// @Failure      404  {object}  errorResponse
// @Router       /vehicle-owners/{id} [get]
func (h *VehicleOwnerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /vehicle-owners.
//
// @Summary      Create a vehicle owner
// @Tags         vehicle-owners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleOwnerRequest  true  "Vehicle owner"
// @Success      201   {object}  domain.VehicleOwner
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /vehicle-owners [post]
func (h *VehicleOwnerHandler) Create(c echo.Context) error {
	var req createVehicleOwnerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	o, err := h.service.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceVehicleOwner, security.OpCreate)
	return c.JSON(http.StatusCreated, o)
}
