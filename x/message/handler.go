// Package message stores chat messages and recomputes their validity
// from the author's active keys.
package message

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("message")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Post(c echo.Context) error
	Get(c echo.Context) error
	ListByRoom(c echo.Context) error
}

type handler struct {
	service core.MessageService
	member  core.MemberService
}

// NewHandler creates a new handler
func NewHandler(service core.MessageService, member core.MemberService) Handler {
	return &handler{service, member}
}

type postRequest struct {
	LrzID     string `json:"lrz_id"`
	Text      string `json:"text"`
	Signature string `json:"signature"`
}

// Post stores a new message in the room. The message is persisted even
// when the signature does not validate; clients see the valid flag.
func (h *handler) Post(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Post")
	defer span.End()

	var request postRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.LrzID == "" || request.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lrz_id and text are required"})
	}

	member, err := h.member.GetByLrzID(ctx, request.LrzID)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	created, err := h.service.Post(ctx, c.Param("id"), member, request.Text, request.Signature)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"content": created})
}

// Get returns a message by ID
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Get")
	defer span.End()

	message, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": message})
}

// ListByRoom returns all messages of a chat room in creation order
func (h *handler) ListByRoom(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.ListByRoom")
	defer span.End()

	messages, err := h.service.GetByRoom(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": messages})
}
