package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/mock"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSaltRegistry(t *testing.T, ctrl *gomock.Controller) (SaltRegistry, *mock.MockSaltStore) {
	t.Helper()
	salts := mock.NewMockSaltStore(ctrl)
	registry := NewSaltRegistry(salts, crypto.NewKeyChain(), logger.Nop())
	return registry, salts
}

func TestSaltRegistry_GetOrCreateSalt_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	stored := []byte("0123456789abcdef")
	salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{
		UserID: "user-1",
		Salt:   crypto.EncodeBase64(stored),
	}, nil)

	salt, isNewUser, err := registry.GetOrCreateSalt(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, isNewUser)
	assert.Equal(t, stored, salt)
}

func TestSaltRegistry_GetOrCreateSalt_FirstTimeUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	var inserted models.SaltRecord
	salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{}, store.ErrSaltNotFound)
	salts.EXPECT().InsertSalt(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record models.SaltRecord) error {
			inserted = record
			return nil
		})

	salt, isNewUser, err := registry.GetOrCreateSalt(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, isNewUser)
	assert.Len(t, salt, crypto.SaltSize)
	assert.Equal(t, "user-1", inserted.UserID)
	assert.Equal(t, crypto.EncodeBase64(salt), inserted.Salt)
}

func TestSaltRegistry_GetOrCreateSalt_InsertRaceRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	winner := []byte("fedcba9876543210")
	gomock.InOrder(
		salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{}, store.ErrSaltNotFound),
		salts.EXPECT().InsertSalt(ctx, gomock.Any()).Return(store.ErrSaltAlreadyExists),
		salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{
			UserID: "user-1",
			Salt:   crypto.EncodeBase64(winner),
		}, nil),
	)

	salt, isNewUser, err := registry.GetOrCreateSalt(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, isNewUser, "race loser must report the winner's salt as existing")
	assert.Equal(t, winner, salt)
}

func TestSaltRegistry_GetOrCreateSalt_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{}, errors.New("connection refused"))

	salt, isNewUser, err := registry.GetOrCreateSalt(ctx, "user-1")
	require.Error(t, err)
	assert.Nil(t, salt)
	assert.False(t, isNewUser)
	assert.Contains(t, err.Error(), "fetch salt")
}

func TestSaltRegistry_GetSalt_NotFoundPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	salts.EXPECT().GetSalt(ctx, "user-1").Return(models.SaltRecord{}, store.ErrSaltNotFound)

	_, err := registry.GetSalt(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrSaltNotFound)
}

func TestSaltRegistry_UpdateSalt_Replaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, salts := newTestSaltRegistry(t, ctrl)
	ctx := context.Background()

	newSalt := []byte("aaaabbbbccccdddd")
	salts.EXPECT().ReplaceSalt(ctx, models.SaltRecord{
		UserID: "user-1",
		Salt:   crypto.EncodeBase64(newSalt),
	}).Return(nil)

	require.NoError(t, registry.UpdateSalt(ctx, "user-1", newSalt))
}
