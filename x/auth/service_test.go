package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/campuschat/server/core"
	mock_core "github.com/campuschat/server/core/mock"
	"github.com/campuschat/server/internal/testutil"
	"github.com/campuschat/server/x/key"
	"github.com/campuschat/server/x/util"
)

func TestAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	keyText, err := core.ExportPublicKey(&priv.PublicKey)
	assert.NoError(t, err)

	signature, err := core.SignMessage("payload", priv)
	assert.NoError(t, err)

	mockKey := mock_core.NewMockKeyService(ctrl)
	mockKey.EXPECT().GetActiveKeys(gomock.Any(), uint(1)).Return([]core.PublicKey{
		{ID: 1, MemberID: 1, KeyText: keyText, Active: true},
	}, nil)

	service := NewService(mockKey)

	ok, err := service.Authorized(context.Background(), 1, "payload", signature)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizedSecondKeyMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	keyText, err := core.ExportPublicKey(&priv.PublicKey)
	assert.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	otherKeyText, err := core.ExportPublicKey(&other.PublicKey)
	assert.NoError(t, err)

	signature, err := core.SignMessage("payload", priv)
	assert.NoError(t, err)

	mockKey := mock_core.NewMockKeyService(ctrl)
	mockKey.EXPECT().GetActiveKeys(gomock.Any(), uint(1)).Return([]core.PublicKey{
		{ID: 1, MemberID: 1, KeyText: otherKeyText, Active: true},
		{ID: 2, MemberID: 1, KeyText: keyText, Active: true},
	}, nil)

	service := NewService(mockKey)

	ok, err := service.Authorized(context.Background(), 1, "payload", signature)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizedNoKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKey := mock_core.NewMockKeyService(ctrl)
	mockKey.EXPECT().GetActiveKeys(gomock.Any(), uint(1)).Return([]core.PublicKey{}, nil)

	service := NewService(mockKey)

	ok, err := service.Authorized(context.Background(), 1, "payload", "c2lnbmF0dXJl")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizedEmptyInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKey := mock_core.NewMockKeyService(ctrl)
	mockKey.EXPECT().GetActiveKeys(gomock.Any(), gomock.Any()).Times(0)

	service := NewService(mockKey)

	ok, err := service.Authorized(context.Background(), 1, "", "c2ln")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = service.Authorized(context.Background(), 1, "payload", "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizedKeyLifecycle(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMember := mock_core.NewMockMemberService(ctrl)
	mockMail := mock_core.NewMockMailSender(ctrl)

	repo := key.NewRepository(db, mc)
	keyService := key.NewService(repo, mockMember, mockMail, util.Config{})
	service := NewService(keyService)

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)
	keyText, err := core.ExportPublicKey(&priv.PublicKey)
	assert.NoError(t, err)

	signature, err := core.SignMessage("payload", priv)
	assert.NoError(t, err)

	created, err := repo.Create(ctx, core.PublicKey{MemberID: 1, KeyText: keyText})
	assert.NoError(t, err)

	// Test1. the signature is cryptographically sound, but the key is
	// not active yet
	ok, err := service.Authorized(ctx, 1, "payload", signature)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Test2. activation flips the outcome for the same inputs
	_, err = repo.Activate(ctx, created.ID)
	assert.NoError(t, err)

	ok, err = service.Authorized(ctx, 1, "payload", signature)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Test3. the same signature attributed to another member fails
	ok, err = service.Authorized(ctx, 2, "payload", signature)
	assert.NoError(t, err)
	assert.False(t, ok)
}
