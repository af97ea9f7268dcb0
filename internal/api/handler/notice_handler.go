package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

// NoticeHandler handles correction notices and the violations recorded on them.
type NoticeHandler struct {
	notices    ports.CorrectionNoticeService
	violations ports.NoticeViolationService
	types      ports.ViolationTypeService
}

func NewNoticeHandler(notices ports.CorrectionNoticeService, violations ports.NoticeViolationService, types ports.ViolationTypeService) *NoticeHandler {
	return &NoticeHandler{notices: notices, violations: violations, types: types}
}

// ListViolationTypes handles GET /violation-types.
//
// @Summary      List violation types
// @Tags         violation-types
// @Produce      json
// @Success      200  {array}  domain.ViolationType
// @Router       /violation-types [get]
func (h *NoticeHandler) ListViolationTypes(c echo.Context) error {
	types, err := h.types.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// Get handles GET /correction-notices/:id.
//
// @Summary      Get a correction notice
// @Tags         correction-notices
// @Produce      json
// @Param        id   path      int  true  "Correction notice ID"
// @Success      200  {object}  domain.CorrectionNotice
// @Failure      404  {object}  errorResponse
// @Router       /correction-notices/{id} [get]
func (h *NoticeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	n, err := h.notices.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Violations handles GET /correction-notices/:id/violations.
//
// @Summary      List the violations on a notice
// @Tags         correction-notices
// @Produce      json
// @Param        id   path      int  true  "Correction notice ID"
// @Success      200  {array}   domain.NoticeViolation
// @Failure      404  {object}  errorResponse
// @Router       /correction-notices/{id}/violations [get]
func (h *NoticeHandler) Violations(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.notices.Violations(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /correction-notices.
//
// @Summary      Issue a correction notice
// @Tags         correction-notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string               false  "Replay key"
// @Param        body             body      createNoticeRequest  true   "Correction notice"
// @Success      201              {object}  domain.CorrectionNotice
// @Failure      404              {object}  errorResponse  "Driver, vehicle or officer not found"
// @Failure      422              {object}  errorResponse
// @Router       /correction-notices [post]
func (h *NoticeHandler) Create(c echo.Context) error {
	var req createNoticeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	n, err := h.notices.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceCorrectionNotice, security.OpCreate)
	return c.JSON(http.StatusCreated, n)
}

// Update handles PUT /correction-notices/:id.
//
// @Summary      Update a correction notice
// @Tags         correction-notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Correction notice ID"
// @Param        body  body      updateNoticeRequest  true  "Fields to change"
// @Success      200   {object}  domain.CorrectionNotice
// @Failure      404   {object}  errorResponse
// @Router       /correction-notices/{id} [put]
func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateNoticeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	n, err := h.notices.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}
	countMutation(security.ResourceCorrectionNotice, security.OpUpdate)
	return c.JSON(http.StatusOK, n)
}

// Delete handles DELETE /correction-notices/:id. Its notice violations go with it.
//
// @Summary      Delete a correction notice
// @Tags         correction-notices
// @Security     BearerAuth
// @Param        id   path  int  true  "Correction notice ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /correction-notices/{id} [delete]
func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.notices.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(security.ResourceCorrectionNotice, security.OpDelete)
	return c.NoContent(http.StatusNoContent)
}

// GetViolation handles GET /notice-violations/:id.
//
// @Summary      Get a notice violation
// @Tags         notice-violations
// @Produce      json
// @Param        id   path      int  true  "Notice violation ID"
// @Success      200  {object}  domain.NoticeViolation
// @Failure      404  {object}  errorResponse
// @Router       /notice-violations/{id} [get]
func (h *NoticeHandler) GetViolation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	nv, err := h.violations.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nv)
}

// CreateViolation handles POST /notice-violations.
//
// @Summary      Record a violation on a notice
// @Tags         notice-violations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoticeViolationRequest  true  "Notice violation"
// @Success      201   {object}  domain.NoticeViolation
// @Failure      404   {object}  errorResponse  "Notice or violation type not found"
// @Router       /notice-violations [post]
func (h *NoticeHandler) CreateViolation(c echo.Context) error {
	var req createNoticeViolationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	nv, err := h.violations.Create(c.Request().Context(), req.toDomain(), idempotencyKey(c))
	if err != nil {
		return err
	}
	countMutation(security.ResourceNoticeViolation, security.OpCreate)
	return c.JSON(http.StatusCreated, nv)
}

// DeleteViolation handles DELETE /notice-violations/:id.
//
// @Summary      Remove a violation from a notice
// @Tags         notice-violations
// @Security     BearerAuth
// @Param        id   path  int  true  "Notice violation ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /notice-violations/{id} [delete]
func (h *NoticeHandler) DeleteViolation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.violations.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(security.ResourceNoticeViolation, security.OpDelete)
	return c.NoContent(http.StatusNoContent)
}
