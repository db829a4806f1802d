package room

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

func newMembershipContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("room1")
	return c, rec
}

func TestJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockRoomService(ctrl)
	mockService.EXPECT().Join(gomock.Any(), "room1", member).Return(core.ChatRoom{ID: "room1", Members: []core.Member{member}}, nil)

	mockMember := mock_core.NewMockMemberService(ctrl)
	mockMember.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(true, nil)

	h := NewHandler(mockService, mockMember, mockAuth)

	c, rec := newMembershipContext(`{"lrz_id": "ab12cde", "signature": "c2ln"}`)
	err := h.Join(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJoinBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockRoomService(ctrl)
	// a rejected signature must not touch the room
	mockService.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	mockMember := mock_core.NewMockMemberService(ctrl)
	mockMember.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(false, nil)

	h := NewHandler(mockService, mockMember, mockAuth)

	c, rec := newMembershipContext(`{"lrz_id": "ab12cde", "signature": "c2ln"}`)
	err := h.Join(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJoinMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mock_core.NewMockRoomService(ctrl), mock_core.NewMockMemberService(ctrl), mock_core.NewMockAuthService(ctrl))

	c, rec := newMembershipContext(`{"lrz_id": "ab12cde"}`)
	err := h.Join(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newMembershipContext(`{"signature": "c2ln"}`)
	err = h.Join(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinUnknownMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMember := mock_core.NewMockMemberService(ctrl)
	mockMember.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(core.Member{}, core.NewErrorNotFound())

	h := NewHandler(mock_core.NewMockRoomService(ctrl), mockMember, mock_core.NewMockAuthService(ctrl))

	c, rec := newMembershipContext(`{"lrz_id": "ab12cde", "signature": "c2ln"}`)
	err := h.Join(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	mockService := mock_core.NewMockRoomService(ctrl)
	mockService.EXPECT().Leave(gomock.Any(), "room1", member).Return(core.ChatRoom{ID: "room1"}, nil)

	mockMember := mock_core.NewMockMemberService(ctrl)
	mockMember.EXPECT().GetByLrzID(gomock.Any(), "ab12cde").Return(member, nil)

	mockAuth := mock_core.NewMockAuthService(ctrl)
	mockAuth.EXPECT().Authorized(gomock.Any(), uint(1), "ab12cde", "c2ln").Return(true, nil)

	h := NewHandler(mockService, mockMember, mockAuth)

	c, rec := newMembershipContext(`{"lrz_id": "ab12cde", "signature": "c2ln"}`)
	err := h.Leave(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
