package service

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/keystore"
	"github.com/quietpage/quietpage/internal/logger"
)

// keyService is the private implementation of [KeyService]. It is the only
// component that writes the key store: once at login, once at the rotation
// commit.
type keyService struct {
	registry SaltRegistry
	keychain crypto.KeyChain
	keys     *keystore.Store
	logger   *logger.Logger
}

// NewKeyService constructs a [KeyService] over the salt registry, the key
// chain, and the session key store.
func NewKeyService(registry SaltRegistry, keychain crypto.KeyChain, keys *keystore.Store, logger *logger.Logger) KeyService {
	return &keyService{registry: registry, keychain: keychain, keys: keys, logger: logger}
}

// DeriveAndStoreKey implements [KeyService]. Salt resolution happens first;
// on any salt failure the key store is left untouched.
func (k *keyService) DeriveAndStoreKey(ctx context.Context, userID, password string) (bool, error) {
	log := logger.FromContext(ctx)

	salt, isNewUser, err := k.registry.GetOrCreateSalt(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "keyService.DeriveAndStoreKey").
			Str("user_id", userID).
			Msg("salt resolution failed, key store untouched")
		return false, fmt.Errorf("resolve salt: %w", err)
	}

	key := k.keychain.DeriveKey(password, salt)
	k.keys.Set(key, salt)

	log.Info().
		Str("func", "keyService.DeriveAndStoreKey").
		Str("user_id", userID).
		Bool("is_new_user", isNewUser).
		Msg("session key derived and stored")

	return isNewUser, nil
}

// ClearEncryptionKey implements [KeyService].
func (k *keyService) ClearEncryptionKey() {
	k.keys.Clear()
}

// IsKeyReady implements [KeyService].
func (k *keyService) IsKeyReady() bool {
	return k.keys.Has()
}

// EncryptionKey implements [KeyService].
func (k *keyService) EncryptionKey() crypto.Key {
	return k.keys.Key()
}

// VerifyPassword implements [KeyService]. The derivation alone cannot prove
// the password correct; treat the returned key as a candidate until a
// decryption with it succeeds.
func (k *keyService) VerifyPassword(ctx context.Context, userID, password string) (crypto.Key, []byte, error) {
	salt, err := k.registry.GetSalt(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoAccountState, err)
	}

	return k.keychain.DeriveKey(password, salt), salt, nil
}

// DeriveNewKey implements [KeyService].
func (k *keyService) DeriveNewKey(password string, salt []byte) crypto.Key {
	return k.keychain.DeriveKey(password, salt)
}

// GenerateNewSalt implements [KeyService].
func (k *keyService) GenerateNewSalt() ([]byte, error) {
	return k.keychain.GenerateSalt()
}

// UpdateStoredKey implements [KeyService].
func (k *keyService) UpdateStoredKey(key crypto.Key, salt []byte) {
	k.keys.Set(key, salt)
}
