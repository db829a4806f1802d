// Package member handles chat participants and their device
// registration ids.
package member

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("member")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Register(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	AddRegistrationID(c echo.Context) error
	RemoveRegistrationID(c echo.Context) error
}

type handler struct {
	service core.MemberService
	auth    core.AuthService
}

// NewHandler creates a new handler
func NewHandler(service core.MemberService, auth core.AuthService) Handler {
	return &handler{service, auth}
}

type registerRequest struct {
	LrzID     string `json:"lrz_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register creates a new member
func (h *handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Member.Handler.Register")
	defer span.End()

	var request registerRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.LrzID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lrz_id is required"})
	}

	created, err := h.service.Register(ctx, core.Member{
		LrzID:     request.LrzID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"content": created})
}

// Get returns a member by lrz id
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Member.Handler.Get")
	defer span.End()

	member, err := h.service.GetByLrzID(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": member})
}

// List returns all members
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Member.Handler.List")
	defer span.End()

	members, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": members})
}

type registrationIDRequest struct {
	RegistrationID string `json:"registration_id"`
	Signature      string `json:"signature"`
}

// AddRegistrationID appends a device registration id to the member.
// The signature must cover the member's lrz id.
func (h *handler) AddRegistrationID(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Member.Handler.AddRegistrationID")
	defer span.End()

	member, request, err := h.gateRegistrationIDRequest(c)
	if err != nil {
		span.RecordError(err)
		return gateErrorResponse(c, err)
	}

	updated, err := h.service.AddRegistrationID(ctx, member.ID, request.RegistrationID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": updated})
}

// RemoveRegistrationID removes the first matching registration id.
// Removing an id the member does not have is a no-op.
func (h *handler) RemoveRegistrationID(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Member.Handler.RemoveRegistrationID")
	defer span.End()

	member, request, err := h.gateRegistrationIDRequest(c)
	if err != nil {
		span.RecordError(err)
		return gateErrorResponse(c, err)
	}

	updated, err := h.service.RemoveRegistrationID(ctx, member.ID, request.RegistrationID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": updated})
}

// gateRegistrationIDRequest binds and signature-checks a registration
// id mutation. The signed payload is the member's lrz id.
func (h *handler) gateRegistrationIDRequest(c echo.Context) (core.Member, registrationIDRequest, error) {
	ctx := c.Request().Context()

	var request registrationIDRequest
	err := c.Bind(&request)
	if err != nil {
		return core.Member{}, request, core.NewErrorMalformed()
	}

	if request.RegistrationID == "" || request.Signature == "" {
		return core.Member{}, request, core.NewErrorMalformed()
	}

	member, err := h.service.GetByLrzID(ctx, c.Param("id"))
	if err != nil {
		return core.Member{}, request, err
	}

	ok, err := h.auth.Authorized(ctx, member.ID, member.LrzID, request.Signature)
	if err != nil {
		return core.Member{}, request, err
	}
	if !ok {
		return core.Member{}, request, core.NewErrorPermissionDenied()
	}

	return member, request, nil
}

// gateErrorResponse maps gate errors onto the mutation status matrix.
func gateErrorResponse(c echo.Context, err error) error {
	switch err.(type) {
	case core.ErrorMalformed:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "registration_id and signature are required"})
	case core.ErrorNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
	case core.ErrorPermissionDenied:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "signature does not validate against any active key"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
