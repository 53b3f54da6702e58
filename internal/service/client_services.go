package service

import (
	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/keystore"
	"github.com/quietpage/quietpage/internal/logger"
)

// ClientServices bundles the crypto core as the UI consumes it: the key
// lifecycle, the record cipher, the draft save/load surface, and the
// password-rotation entry point. One bundle per session.
type ClientServices struct {
	KeyService   KeyService
	SaltRegistry SaltRegistry
	DraftCipher  DraftCipher
	DraftService ClientDraftService
	Rotator      PasswordRotator
}

// NewClientServices wires the core over the storage and identity
// collaborators. retries may be nil to disable salt-update retry scheduling.
func NewClientServices(
	drafts DraftStore,
	salts SaltStore,
	identity IdentityProvider,
	retries SaltRetryQueue,
	log *logger.Logger,
) *ClientServices {
	keychain := crypto.NewKeyChain()
	keys := keystore.New()

	registry := NewSaltRegistry(salts, keychain, log)
	keySvc := NewKeyService(registry, keychain, keys, log)
	cipher := NewDraftCipher(keySvc, keychain)

	return &ClientServices{
		KeyService:   keySvc,
		SaltRegistry: registry,
		DraftCipher:  cipher,
		DraftService: NewClientDraftService(cipher, drafts, log),
		Rotator:      NewPasswordRotator(keySvc, registry, cipher, drafts, identity, retries, log),
	}
}
