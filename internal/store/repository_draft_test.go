package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

func newTestDraftRepo(t *testing.T) (*draftRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &draftRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testDraft(id string) models.EncryptedDraft {
	return models.EncryptedDraft{
		ID:            id,
		UserID:        "user-1",
		CipherContent: "Y29udGVudA==",
		CipherMeta:    "bWV0YQ==",
		IV:            "AAAAAAAAAAAAAAAA",
	}
}

func TestDraftSave_Single(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	draft := testDraft("draft-1")

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(draft.ID, draft.UserID, draft.CipherContent, draft.CipherMeta, draft.IV).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestDraftSave_SingleNoRows(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	draft := testDraft("draft-1")

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(draft.ID, draft.UserID, draft.CipherContent, draft.CipherMeta, draft.IV).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), draft)
	if !errors.Is(err, ErrDraftNotSaved) {
		t.Fatalf("expected ErrDraftNotSaved, got %v", err)
	}
}

func TestDraftSave_MultipleInTransaction(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	first := testDraft("draft-1")
	second := testDraft("draft-2")

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO drafts")
	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(first.ID, first.UserID, first.CipherContent, first.CipherMeta, first.IV).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(second.ID, second.UserID, second.CipherContent, second.CipherMeta, second.IV).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Save(context.Background(), first, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestDraftSave_MultipleRollbackOnFailure(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	first := testDraft("draft-1")
	second := testDraft("draft-2")

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO drafts")
	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(first.ID, first.UserID, first.CipherContent, first.CipherMeta, first.IV).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(second.ID, second.UserID, second.CipherContent, second.CipherMeta, second.IV).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), first, second)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestDraftGetAll_IncludesSoftDeleted(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "ciphertext_content", "ciphertext_metadata", "iv", "created_at", "updated_at", "deleted",
	}).
		AddRow("draft-1", "user-1", "Y29udGVudA==", "bWV0YQ==", "AAAAAAAAAAAAAAAA", nil, nil, false).
		AddRow("draft-2", "user-1", "ZGVsZXRlZA==", "bWV0YQ==", "AAAAAAAAAAAAAAAA", nil, nil, true)

	mock.ExpectQuery("SELECT id, user_id, ciphertext_content").
		WithArgs("user-1").
		WillReturnRows(rows)

	drafts, err := repo.GetAll(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if !drafts[1].Deleted {
		t.Error("expected soft-deleted draft to be included with Deleted=true")
	}
}

func TestDraftGetAll_Empty(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "ciphertext_content", "ciphertext_metadata", "iv", "created_at", "updated_at", "deleted",
	})

	mock.ExpectQuery("SELECT id, user_id, ciphertext_content").
		WithArgs("user-1").
		WillReturnRows(rows)

	drafts, err := repo.GetAll(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 0 {
		t.Fatalf("expected empty slice, got %d drafts", len(drafts))
	}
}

func TestUpdateCiphers_Single(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	update := models.CipherUpdate{
		ID:            "draft-1",
		CipherContent: "bmV3",
		CipherMeta:    "bmV3bWV0YQ==",
		IV:            "AAAAAAAAAAAAAAAA",
	}

	mock.ExpectExec("UPDATE drafts").
		WithArgs(update.CipherContent, update.CipherMeta, update.IV, update.ID, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateCiphers(context.Background(), "user-1", update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCiphers_SingleNotFound(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	update := models.CipherUpdate{ID: "ghost", CipherContent: "bmV3", CipherMeta: "bQ==", IV: "AAAAAAAAAAAAAAAA"}

	mock.ExpectExec("UPDATE drafts").
		WithArgs(update.CipherContent, update.CipherMeta, update.IV, update.ID, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCiphers(context.Background(), "user-1", update)
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestUpdateCiphers_MultipleRollbackOnMissingRow(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	first := models.CipherUpdate{ID: "draft-1", CipherContent: "YQ==", CipherMeta: "Yg==", IV: "AAAAAAAAAAAAAAAA"}
	second := models.CipherUpdate{ID: "ghost", CipherContent: "Yw==", CipherMeta: "ZA==", IV: "AAAAAAAAAAAAAAAA"}

	mock.ExpectBegin()
	mock.ExpectPrepare("UPDATE drafts")
	mock.ExpectExec("UPDATE drafts").
		WithArgs(first.CipherContent, first.CipherMeta, first.IV, first.ID, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE drafts").
		WithArgs(second.CipherContent, second.CipherMeta, second.IV, second.ID, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateCiphers(context.Background(), "user-1", first, second)
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestUpdateCiphers_NoUpdatesIsNoop(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	if err := repo.UpdateCiphers(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no queries for empty update batch: %v", err)
	}
}

func TestSoftDelete_MarksRows(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	// squirrel binds the SET value first, then IN ($3,$4) for the id slice.
	mock.ExpectExec("UPDATE drafts SET deleted = ").
		WithArgs(true, "user-1", "draft-1", "draft-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.SoftDelete(context.Background(), "user-1", "draft-1", "draft-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE drafts SET deleted = ").
		WithArgs(true, "user-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), "user-1", "ghost")
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestPurge_RemovesRows(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM drafts").
		WithArgs("user-1", "draft-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Purge(context.Background(), "user-1", "draft-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPurge_NotFound(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM drafts").
		WithArgs("user-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Purge(context.Background(), "user-1", "ghost")
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}
