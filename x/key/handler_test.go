package key

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
)

func newKeyContext(method, body, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	return c, rec
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockKeyService(ctrl)
	mockService.EXPECT().Register(gomock.Any(), "ab12cde", "loremipsum").Return(core.PublicKey{ID: 1, MemberID: 1, KeyText: "loremipsum"}, nil)

	h := NewHandler(mockService, mock_core.NewMockMemberService(ctrl))

	c, rec := newKeyContext(http.MethodPost, `{"key_text": "loremipsum"}`, "id", "ab12cde")
	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterHandlerMissingKeyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockKeyService(ctrl)
	mockService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	h := NewHandler(mockService, mock_core.NewMockMemberService(ctrl))

	c, rec := newKeyContext(http.MethodPost, `{}`, "id", "ab12cde")
	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandlerUnknownMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockKeyService(ctrl)
	mockService.EXPECT().Register(gomock.Any(), "zz99zzz", "loremipsum").Return(core.PublicKey{}, core.NewErrorNotFound())

	h := NewHandler(mockService, mock_core.NewMockMemberService(ctrl))

	c, rec := newKeyContext(http.MethodPost, `{"key_text": "loremipsum"}`, "id", "zz99zzz")
	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockKeyService(ctrl)
	mockService.EXPECT().Confirm(gomock.Any(), "sometoken").Return(core.PublicKey{ID: 1, Active: true}, nil)

	h := NewHandler(mockService, mock_core.NewMockMemberService(ctrl))

	c, rec := newKeyContext(http.MethodGet, "", "token", "sometoken")
	err := h.Confirm(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirmHandlerUnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_core.NewMockKeyService(ctrl)
	mockService.EXPECT().Confirm(gomock.Any(), "sometoken").Return(core.PublicKey{}, core.NewErrorNotFound())

	h := NewHandler(mockService, mock_core.NewMockMemberService(ctrl))

	// expired and never-issued tokens are indistinguishable
	c, rec := newKeyContext(http.MethodGet, "", "token", "sometoken")
	err := h.Confirm(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
