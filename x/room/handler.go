// Package room manages chat rooms and their signature-gated membership
// mutations.
package room

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("room")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Join(c echo.Context) error
	Leave(c echo.Context) error
}

type handler struct {
	service core.RoomService
	member  core.MemberService
	auth    core.AuthService
}

// NewHandler creates a new handler
func NewHandler(service core.RoomService, member core.MemberService, auth core.AuthService) Handler {
	return &handler{service, member, auth}
}

type createRequest struct {
	Name string `json:"name"`
}

// Create creates a new chat room
func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Room.Handler.Create")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	created, err := h.service.Create(ctx, request.Name)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"content": created})
}

// Get returns a chat room with its member set
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Room.Handler.Get")
	defer span.End()

	room, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": room})
}

// List returns all chat rooms
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Room.Handler.List")
	defer span.End()

	rooms, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": rooms})
}

type membershipRequest struct {
	LrzID     string `json:"lrz_id"`
	Signature string `json:"signature"`
}

// Join adds the requesting member to the room. The signed payload is
// the member's lrz id.
func (h *handler) Join(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Room.Handler.Join")
	defer span.End()

	member, err := h.gateMembershipRequest(c)
	if err != nil {
		span.RecordError(err)
		return gateErrorResponse(c, err)
	}

	room, err := h.service.Join(ctx, c.Param("id"), member)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": room})
}

// Leave removes the requesting member from the room
func (h *handler) Leave(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Room.Handler.Leave")
	defer span.End()

	member, err := h.gateMembershipRequest(c)
	if err != nil {
		span.RecordError(err)
		return gateErrorResponse(c, err)
	}

	room, err := h.service.Leave(ctx, c.Param("id"), member)
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": room})
}

func (h *handler) gateMembershipRequest(c echo.Context) (core.Member, error) {
	ctx := c.Request().Context()

	var request membershipRequest
	err := c.Bind(&request)
	if err != nil {
		return core.Member{}, core.NewErrorMalformed()
	}

	if request.LrzID == "" || request.Signature == "" {
		return core.Member{}, core.NewErrorMalformed()
	}

	member, err := h.member.GetByLrzID(ctx, request.LrzID)
	if err != nil {
		return core.Member{}, err
	}

	ok, err := h.auth.Authorized(ctx, member.ID, member.LrzID, request.Signature)
	if err != nil {
		return core.Member{}, err
	}
	if !ok {
		return core.Member{}, core.NewErrorPermissionDenied()
	}

	return member, nil
}

// gateErrorResponse maps gate errors onto the mutation status matrix.
func gateErrorResponse(c echo.Context, err error) error {
	switch err.(type) {
	case core.ErrorMalformed:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lrz_id and signature are required"})
	case core.ErrorNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
	case core.ErrorPermissionDenied:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "signature does not validate against any active key"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
