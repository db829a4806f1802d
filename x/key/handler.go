// Package key manages the lifecycle of member public keys:
// registration, confirmation and activation.
package key

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("key")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Register(c echo.Context) error
	Confirm(c echo.Context) error
	List(c echo.Context) error
}

type handler struct {
	service core.KeyService
	member  core.MemberService
}

// NewHandler creates a new handler
func NewHandler(service core.KeyService, member core.MemberService) Handler {
	return &handler{service, member}
}

type registerRequest struct {
	KeyText string `json:"key_text"`
}

// Register is used to upload a new public key for a member
func (h *handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Key.Handler.Register")
	defer span.End()

	var request registerRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.KeyText == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "key_text is required"})
	}

	created, err := h.service.Register(ctx, c.Param("id"), request.KeyText)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"content": created})
}

// Confirm consumes a confirmation token and activates the key
func (h *handler) Confirm(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Key.Handler.Confirm")
	defer span.End()

	key, err := h.service.Confirm(ctx, c.Param("token"))
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "confirmation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": key})
}

// List returns all keys of a member
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Key.Handler.List")
	defer span.End()

	member, err := h.member.GetByLrzID(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	keys, err := h.service.GetAllKeys(ctx, member.ID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": keys})
}
