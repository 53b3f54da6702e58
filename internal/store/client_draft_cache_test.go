package store

import (
	"context"
	"errors"
	"testing"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/mock"
	"github.com/quietpage/quietpage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCachingStore(t *testing.T) (*CachingDraftStore, *mock.MockDraftStore, *mock.MockLocalDraftRepository) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockDraftStore(ctrl)
	local := mock.NewMockLocalDraftRepository(ctrl)
	return NewCachingDraftStore(remote, local, logger.Nop()), remote, local
}

func TestCachingDraftStore_SaveDraft_MirrorsOnSuccess(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	draft := models.EncryptedDraft{ID: "draft-1", UserID: "user-1", CipherContent: "YQ==", CipherMeta: "Yg==", IV: "aXY="}

	remote.EXPECT().SaveDraft(ctx, draft).Return(nil)
	local.EXPECT().SaveDraft(ctx, draft).Return(nil)

	require.NoError(t, cache.SaveDraft(ctx, draft))
}

func TestCachingDraftStore_SaveDraft_RemoteFailureSkipsMirror(t *testing.T) {
	cache, remote, _ := newTestCachingStore(t)
	ctx := context.Background()

	draft := models.EncryptedDraft{ID: "draft-1", UserID: "user-1"}
	remoteErr := errors.New("connection refused")

	// No local expectation: the mirror must not lead the server.
	remote.EXPECT().SaveDraft(ctx, draft).Return(remoteErr)

	assert.ErrorIs(t, cache.SaveDraft(ctx, draft), remoteErr)
}

func TestCachingDraftStore_SaveDraft_MirrorFailureIsSwallowed(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	draft := models.EncryptedDraft{ID: "draft-1", UserID: "user-1"}

	remote.EXPECT().SaveDraft(ctx, draft).Return(nil)
	local.EXPECT().SaveDraft(ctx, draft).Return(errors.New("database is locked"))

	assert.NoError(t, cache.SaveDraft(ctx, draft), "cache failures must not fail the save")
}

func TestCachingDraftStore_GetAllDrafts_RefreshesMirror(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	drafts := []models.EncryptedDraft{
		{ID: "draft-1", UserID: "user-1"},
		{ID: "draft-2", UserID: "user-1", Deleted: true},
	}

	remote.EXPECT().GetAllDrafts(ctx, "user-1").Return(drafts, nil)
	local.EXPECT().ReplaceAll(ctx, "user-1", drafts).Return(nil)

	got, err := cache.GetAllDrafts(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, drafts, got)
}

func TestCachingDraftStore_GetAllDrafts_ServesMirrorOffline(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	cached := []models.EncryptedDraft{{ID: "draft-1", UserID: "user-1"}}

	remote.EXPECT().GetAllDrafts(ctx, "user-1").Return(nil, errors.New("connection refused"))
	local.EXPECT().GetAllDrafts(ctx, "user-1").Return(cached, nil)

	got, err := cache.GetAllDrafts(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCachingDraftStore_UpdateDraftCiphers_MirrorsOnSuccess(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	update := models.CipherUpdate{ID: "draft-1", CipherContent: "YQ==", CipherMeta: "Yg==", IV: "aXY="}

	remote.EXPECT().UpdateDraftCiphers(ctx, "user-1", update).Return(nil)
	local.EXPECT().UpdateDraftCiphers(ctx, "user-1", update).Return(nil)

	require.NoError(t, cache.UpdateDraftCiphers(ctx, "user-1", update))
}

func TestCachingDraftStore_DeleteAndPurge(t *testing.T) {
	cache, remote, local := newTestCachingStore(t)
	ctx := context.Background()

	remote.EXPECT().DeleteDraft(ctx, "user-1", "draft-1").Return(nil)
	local.EXPECT().MarkDeleted(ctx, "user-1", "draft-1").Return(nil)
	require.NoError(t, cache.DeleteDraft(ctx, "user-1", "draft-1"))

	remote.EXPECT().PurgeDraft(ctx, "user-1", "draft-1").Return(nil)
	local.EXPECT().Purge(ctx, "user-1", "draft-1").Return(nil)
	require.NoError(t, cache.PurgeDraft(ctx, "user-1", "draft-1"))
}
