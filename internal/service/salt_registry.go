package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/models"
)

// saltRegistry is the private implementation of [SaltRegistry]. The remote
// salt store is the source of truth for the persisted salt; the registry only
// coordinates fetch-or-create, fetch, and replace against it.
type saltRegistry struct {
	salts    SaltStore
	keychain crypto.KeyChain
	logger   *logger.Logger
}

// NewSaltRegistry constructs a [SaltRegistry] over the given salt store and
// key chain.
func NewSaltRegistry(salts SaltStore, keychain crypto.KeyChain, logger *logger.Logger) SaltRegistry {
	return &saltRegistry{salts: salts, keychain: keychain, logger: logger}
}

// GetOrCreateSalt implements [SaltRegistry].
//
// Not-found is the expected first-login condition: a new salt is generated
// and persisted, and isNewUser is reported true. If two first-login flows
// race, the store's uniqueness constraint rejects the second insert; that
// loss is resolved by re-fetching the winner's salt once.
func (s *saltRegistry) GetOrCreateSalt(ctx context.Context, userID string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	record, err := s.salts.GetSalt(ctx, userID)
	switch {
	case err == nil:
		salt, decodeErr := crypto.DecodeBase64(record.Salt)
		if decodeErr != nil {
			return nil, false, fmt.Errorf("decode stored salt: %w", decodeErr)
		}
		return salt, false, nil

	case errors.Is(err, store.ErrSaltNotFound):
		// first use: fall through to create

	default:
		log.Err(err).
			Str("func", "saltRegistry.GetOrCreateSalt").
			Str("user_id", userID).
			Msg("failed to fetch salt record")
		return nil, false, fmt.Errorf("fetch salt: %w", err)
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return nil, false, fmt.Errorf("generate salt: %w", err)
	}

	insertErr := s.salts.InsertSalt(ctx, models.SaltRecord{
		UserID: userID,
		Salt:   crypto.EncodeBase64(salt),
	})
	if insertErr == nil {
		log.Info().
			Str("func", "saltRegistry.GetOrCreateSalt").
			Str("user_id", userID).
			Msg("created salt for first-time user")
		return salt, true, nil
	}

	if errors.Is(insertErr, store.ErrSaltAlreadyExists) {
		// Lost the first-login race; the winner's salt is authoritative.
		log.Warn().
			Str("func", "saltRegistry.GetOrCreateSalt").
			Str("user_id", userID).
			Msg("concurrent salt creation detected, re-fetching")

		record, err := s.salts.GetSalt(ctx, userID)
		if err != nil {
			return nil, false, fmt.Errorf("re-fetch salt after insert conflict: %w", err)
		}
		existing, decodeErr := crypto.DecodeBase64(record.Salt)
		if decodeErr != nil {
			return nil, false, fmt.Errorf("decode stored salt: %w", decodeErr)
		}
		return existing, false, nil
	}

	log.Err(insertErr).
		Str("func", "saltRegistry.GetOrCreateSalt").
		Str("user_id", userID).
		Msg("failed to persist new salt")
	return nil, false, fmt.Errorf("persist salt: %w", insertErr)
}

// GetSalt implements [SaltRegistry]. Fetch-only; store.ErrSaltNotFound is
// passed through so callers can test "has this user ever completed setup".
func (s *saltRegistry) GetSalt(ctx context.Context, userID string) ([]byte, error) {
	record, err := s.salts.GetSalt(ctx, userID)
	if err != nil {
		return nil, err
	}

	salt, err := crypto.DecodeBase64(record.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode stored salt: %w", err)
	}
	return salt, nil
}

// UpdateSalt implements [SaltRegistry]. Replace, never mutate-in-place.
func (s *saltRegistry) UpdateSalt(ctx context.Context, userID string, newSalt []byte) error {
	log := logger.FromContext(ctx)

	err := s.salts.ReplaceSalt(ctx, models.SaltRecord{
		UserID: userID,
		Salt:   crypto.EncodeBase64(newSalt),
	})
	if err != nil {
		log.Err(err).
			Str("func", "saltRegistry.UpdateSalt").
			Str("user_id", userID).
			Msg("failed to replace persisted salt")
		return fmt.Errorf("replace salt: %w", err)
	}

	return nil
}
