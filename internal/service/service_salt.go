package service

import (
	"context"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/models"
)

// saltService exposes the per-user salt registry. The server stores exactly
// one salt row per user and never derives anything from it; it exists so a
// user's other devices can reconstruct the same key.
type saltService struct {
	saltRepository store.SaltRepository

	logger *logger.Logger
}

func NewSaltService(saltRepository store.SaltRepository, logger *logger.Logger) SaltService {
	return &saltService{
		saltRepository: saltRepository,
		logger:         logger,
	}
}

// GetSalt returns the registered salt for a user.
// Passes store.ErrSaltNotFound through: a missing row is how the client
// recognises a first-time user.
func (s *saltService) GetSalt(ctx context.Context, userID string) (models.SaltRecord, error) {
	return s.saltRepository.Get(ctx, userID)
}

// RegisterSalt inserts the initial salt row for a user. The unique constraint
// on user_id makes concurrent first logins race safely: the second insert
// fails with store.ErrSaltAlreadyExists and the caller re-fetches.
func (s *saltService) RegisterSalt(ctx context.Context, record models.SaltRecord) error {
	return s.saltRepository.Insert(ctx, record)
}

// ReplaceSalt overwrites the salt row during a password rotation.
func (s *saltService) ReplaceSalt(ctx context.Context, record models.SaltRecord) error {
	return s.saltRepository.Replace(ctx, record)
}
