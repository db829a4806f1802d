package member

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/campuschat/server/core"
	mock_core "github.com/campuschat/server/core/mock"
	"github.com/campuschat/server/internal/testutil"
)

func TestGet(t *testing.T) {
	spanChecker := testutil.SetupMockTraceProvider()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockMemberService(ctrl)
	mockService.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)

	h := NewHandler(mockService, mockAuth)

	c, _, rec, traceID := testutil.CreateHttpRequest()
	c.SetParamNames("id")
	c.SetParamValues("ab12cde")

	err := h.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// the handler span joins the request trace
	found := false
	for _, span := range spanChecker.GetSpans() {
		if span.Name == "Member.Handler.Get" && span.SpanContext.TraceID().String() == traceID {
			found = true
		}
	}
	assert.True(t, found)
}

func newRegistrationIDContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ab12cde")
	return c, rec
}

func TestAddRegistrationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockMemberService(ctrl)
	mockService.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)
	mockService.EXPECT().AddRegistrationID(gomock.Any(), uint(1), "device-a").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(true, nil)

	h := NewHandler(mockService, mockAuth)

	c, rec := newRegistrationIDContext(`{"registration_id": "device-a", "signature": "c2ln"}`)
	err := h.AddRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddRegistrationIDBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockMemberService(ctrl)
	mockService.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)
	// no mutation happens when the signature does not validate
	mockService.EXPECT().AddRegistrationID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(false, nil)

	h := NewHandler(mockService, mockAuth)

	c, rec := newRegistrationIDContext(`{"registration_id": "device-a", "signature": "c2ln"}`)
	err := h.AddRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddRegistrationIDMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMemberService(ctrl)
	mockAuth := mock_core.NewMockAuthService(ctrl)

	h := NewHandler(mockService, mockAuth)

	c, rec := newRegistrationIDContext(`{"registration_id": "device-a"}`)
	err := h.AddRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newRegistrationIDContext(`{"signature": "c2ln"}`)
	err = h.AddRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddRegistrationIDUnknownMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockMemberService(ctrl)
	mockService.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(core.Member{}, core.NewErrorNotFound())

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	h := NewHandler(mockService, mockAuth)

	c, rec := newRegistrationIDContext(`{"registration_id": "device-a", "signature": "c2ln"}`)
	err := h.AddRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveRegistrationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockMemberService(ctrl)
	mockService.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)
	mockService.EXPECT().RemoveRegistrationID(gomock.Any(), uint(1), "device-a").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(true, nil)

	h := NewHandler(mockService, mockAuth)

	c, rec := newRegistrationIDContext(`{"registration_id": "device-a", "signature": "c2ln"}`)
	err := h.RemoveRegistrationID(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
