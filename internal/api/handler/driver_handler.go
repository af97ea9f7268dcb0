package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

// DriverHandler handles HTTP requests for driver records.
type DriverHandler struct {
	service ports.DriverService
}

func NewDriverHandler(service ports.DriverService) *DriverHandler {
	return &DriverHandler{service: service}
}

// FrequentOffenders handles GET /drivers/frequent-offenders.
//
// @Summary      Drivers with many violations
// @Tags         drivers
// @Produce      json
// @Param        min_violations  query     int  false  "Strict lower bound on total violations (default 1)"
// @Success      200             {array}   domain.Driver
// @Failure      422             {object}  errorResponse
// @Router       /drivers/frequent-offenders [get]
func (h *DriverHandler) FrequentOffenders(c echo.Context) error {
	minViolations := 1
	if raw := c.QueryParam("min_violations"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "min_violations must be a non-negative integer")
		}
		minViolations = n
	}

	drivers, err := h.service.FrequentOffenders(c.Request().Context(), minViolations)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drivers)
}

// Get handles GET /drivers/:id.
//
// @Summary      Get a driver
// @Tags         drivers
// @Produce      json
// @Param        id   path      int  true  "Driver ID"
// @Success      200  {object}  domain.Driver
// @Failure      404  {object}  errorResponse
// @Router       /drivers/{id} [get]
func (h *DriverHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Create handles POST /drivers.
//
// @Summary      Create a driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string               false  "Replay key"
// @Param        body             body      createDriverRequest  true   "Driver"
// @Success      201              {object}  domain.Driver
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /drivers [post]
func (h *DriverHandler) Create(c echo.Context) error {
	var req createDriverRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	d, err := h.service.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceDriver, security.OpCreate)
	return c.JSON(http.StatusCreated, d)
}

// Update handles PUT /drivers/:id.
//
// @Summary      Update a driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Driver ID"
// @Param        body  body      updateDriverRequest  true  "Fields to change"
// @Success      200   {object}  domain.Driver
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /drivers/{id} [put]
func (h *DriverHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateDriverRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	d, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	countMutation(security.ResourceDriver, security.OpUpdate)
	return c.JSON(http.StatusOK, d)
}

// Delete handles DELETE /drivers/:id.
//
// @Summary      Delete a driver
// @Tags         drivers
// @Security     BearerAuth
// @Param        id   path  int  true  "Driver ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /drivers/{id} [delete]
func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(security.ResourceDriver, security.OpDelete)
	return c.NoContent(http.StatusNoContent)
}
