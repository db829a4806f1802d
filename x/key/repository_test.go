package key

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	// Test1. keys are created inactive
	created, err := repo.Create(ctx, core.PublicKey{
		MemberID: 1,
		KeyText:  "loremipsum",
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, created.ID)
		assert.False(t, created.Active)
	}

	second, err := repo.Create(ctx, core.PublicKey{
		MemberID: 1,
		KeyText:  "dolorsitamet",
	})
	assert.NoError(t, err)

	// Test2. only activated keys are returned by GetActiveByMember
	active, err := repo.GetActiveByMember(ctx, 1)
	if assert.NoError(t, err) {
		assert.Len(t, active, 0)
	}

	activated, err := repo.Activate(ctx, created.ID)
	if assert.NoError(t, err) {
		assert.True(t, activated.Active)
	}

	active, err = repo.GetActiveByMember(ctx, 1)
	if assert.NoError(t, err) {
		assert.Len(t, active, 1)
		assert.Equal(t, created.ID, active[0].ID)
	}

	all, err := repo.GetByMember(ctx, 1)
	if assert.NoError(t, err) {
		assert.Len(t, all, 2)
	}

	// Test3. activating the second key invalidates the cache
	_, err = repo.Activate(ctx, second.ID)
	assert.NoError(t, err)

	active, err = repo.GetActiveByMember(ctx, 1)
	if assert.NoError(t, err) {
		assert.Len(t, active, 2)
	}

	// Test4. confirmation tokens are unique
	third, err := repo.Create(ctx, core.PublicKey{MemberID: 2, KeyText: "consectetur"})
	assert.NoError(t, err)

	confirmation, err := repo.CreateConfirmation(ctx, core.PublicKeyConfirmation{
		Token:       "k7demmP4Aipcsblr1t4oqhnVIYnBuF",
		PublicKeyID: third.ID,
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, confirmation.ID)
	}

	_, err = repo.CreateConfirmation(ctx, core.PublicKeyConfirmation{
		Token:       "k7demmP4Aipcsblr1t4oqhnVIYnBuF",
		PublicKeyID: third.ID,
	})
	assert.Error(t, err)
	assert.IsType(t, core.ErrorAlreadyExists{}, err)

	found, err := repo.GetConfirmation(ctx, confirmation.Token)
	if assert.NoError(t, err) {
		assert.Equal(t, third.ID, found.PublicKeyID)
		assert.WithinDuration(t, time.Now(), found.CDate, 10*time.Second)
	}

	// Test5. consuming a confirmation activates its key exactly once
	key, err := repo.ConsumeConfirmation(ctx, confirmation.Token)
	if assert.NoError(t, err) {
		assert.Equal(t, third.ID, key.ID)
		assert.True(t, key.Active)
	}

	_, err = repo.ConsumeConfirmation(ctx, confirmation.Token)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	_, err = repo.GetConfirmation(ctx, confirmation.Token)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	// Test6. unknown tokens are not found
	_, err = repo.GetConfirmation(ctx, "nosuchtoken")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	_, err = repo.ConsumeConfirmation(ctx, "nosuchtoken")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	err = repo.DeleteConfirmation(ctx, "nosuchtoken")
	assert.NoError(t, err)
}
