package service

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

// RotationStage names one state of the password-rotation state machine.
type RotationStage int

// Rotation proceeds strictly in declaration order. Aborted is reachable from
// any stage before CommittingKey.
const (
	StageIdle RotationStage = iota
	StageVerifyingOldPassword
	StageFetchingDrafts
	StageDecryptingWithOldKey
	StageUpdatingCredential
	StageDerivingNewKey
	StageReEncrypting
	StagePersistingDrafts
	StageUpdatingSalt
	StageCommittingKey
	StageDone
	StageAborted
)

var rotationStageNames = map[RotationStage]string{
	StageIdle:                 "idle",
	StageVerifyingOldPassword: "verifying current password",
	StageFetchingDrafts:       "fetching drafts",
	StageDecryptingWithOldKey: "decrypting drafts",
	StageUpdatingCredential:   "updating credential",
	StageDerivingNewKey:       "deriving new key",
	StageReEncrypting:         "re-encrypting drafts",
	StagePersistingDrafts:     "saving re-encrypted drafts",
	StageUpdatingSalt:         "updating salt",
	StageCommittingKey:        "committing new key",
	StageDone:                 "done",
	StageAborted:              "aborted",
}

// String implements [fmt.Stringer] for progress display.
func (s RotationStage) String() string {
	if name, ok := rotationStageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// rotationSteps is the number of reportable stages between idle and done.
const rotationSteps = 9

// ProgressFunc receives advisory progress updates during rotation. It must
// not affect correctness when the consumer ignores it; a nil callback is
// valid.
type ProgressFunc func(stage RotationStage, step, total int)

// RotationResult reports which side effects of a rotation actually happened.
// Precision matters here: after step 4 the blast radius widens with every
// stage, and the caller must be able to tell the user whether the password
// changed and how many drafts were migrated.
type RotationResult struct {
	// PasswordChanged reports whether the identity provider accepted the new
	// credential. Once true, a failure can no longer be a clean abort.
	PasswordChanged bool

	// DraftsReEncrypted counts drafts whose new ciphertext was persisted.
	DraftsReEncrypted int

	// DraftsFailed counts drafts whose persistence failed; they remain under
	// the old key in storage and need a manual retry.
	DraftsFailed int

	// SaltUpdated reports whether the persisted salt row was replaced. When
	// false after a successful rotation, re-derivation on the next fresh
	// login would fail until the retry queue reconciles it.
	SaltUpdated bool

	// Stage is the state the machine stopped in: StageDone or StageAborted.
	Stage RotationStage
}

// SaltRetryQueue accepts salt replacements that failed during rotation so a
// background job can retry them. Optional collaborator.
type SaltRetryQueue interface {
	Enqueue(userID string, salt []byte)
}

// PasswordRotator runs the password-change re-encryption protocol.
type PasswordRotator interface {
	// Rotate migrates the user's entire encrypted corpus from the current
	// password's key to the new password's key. Stages 1-4 are atomic: any
	// failure there aborts with no observable change. From stage 5 on the
	// result reports exactly which side effects happened. The session key in
	// the key store is replaced only after persistence has completed.
	Rotate(ctx context.Context, userID, currentPassword, newPassword string, progress ProgressFunc) (RotationResult, error)
}

// rotator is the private implementation of [PasswordRotator].
type rotator struct {
	keys     KeyService
	registry SaltRegistry
	cipher   DraftCipher
	drafts   DraftStore
	identity IdentityProvider
	retries  SaltRetryQueue // may be nil
	logger   *logger.Logger
}

// NewPasswordRotator constructs a [PasswordRotator]. retries may be nil, in
// which case a failed salt replacement is only logged and reported.
func NewPasswordRotator(
	keys KeyService,
	registry SaltRegistry,
	cipher DraftCipher,
	drafts DraftStore,
	identity IdentityProvider,
	retries SaltRetryQueue,
	logger *logger.Logger,
) PasswordRotator {
	return &rotator{
		keys:     keys,
		registry: registry,
		cipher:   cipher,
		drafts:   drafts,
		identity: identity,
		retries:  retries,
		logger:   logger,
	}
}

// rotationRun carries the mutable state of one rotation through its stages.
// Decrypted plaintext lives only here and only between the decrypt and
// persist stages.
type rotationRun struct {
	*rotator

	ctx             context.Context
	userID          string
	currentPassword string
	newPassword     string
	progress        ProgressFunc

	oldKey    crypto.Key
	encrypted []models.EncryptedDraft
	decrypted []models.Draft
	newSalt   []byte
	newKey    crypto.Key
	updates   []models.CipherUpdate

	result RotationResult
	err    error
}

// Rotate implements [PasswordRotator] by driving the state machine from
// VerifyingOldPassword until Done or Aborted. Each transition function
// returns the next stage; the partial-failure boundary after
// UpdatingCredential is encoded in the transitions themselves and cannot be
// skipped.
func (r *rotator) Rotate(ctx context.Context, userID, currentPassword, newPassword string, progress ProgressFunc) (RotationResult, error) {
	run := &rotationRun{
		rotator:         r,
		ctx:             ctx,
		userID:          userID,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		progress:        progress,
	}

	stage := StageVerifyingOldPassword
	for stage != StageDone && stage != StageAborted {
		run.report(stage)
		stage = run.transition(stage)
	}

	run.result.Stage = stage
	return run.result, run.err
}

func (run *rotationRun) report(stage RotationStage) {
	if run.progress == nil {
		return
	}
	step := int(stage) // stages are numbered 1..rotationSteps in order
	run.progress(stage, step, rotationSteps)
}

func (run *rotationRun) transition(stage RotationStage) RotationStage {
	switch stage {
	case StageVerifyingOldPassword:
		return run.verifyOldPassword()
	case StageFetchingDrafts:
		return run.fetchDrafts()
	case StageDecryptingWithOldKey:
		return run.decryptWithOldKey()
	case StageUpdatingCredential:
		return run.updateCredential()
	case StageDerivingNewKey:
		return run.deriveNewKey()
	case StageReEncrypting:
		return run.reEncrypt()
	case StagePersistingDrafts:
		return run.persistDrafts()
	case StageUpdatingSalt:
		return run.updateSalt()
	case StageCommittingKey:
		return run.commitKey()
	default:
		run.err = fmt.Errorf("rotation reached invalid stage %v", stage)
		return StageAborted
	}
}

// verifyOldPassword derives the candidate old key from the stored salt. A
// salt fetch failure means either a wrong account or no account state; in
// both cases nothing has been mutated.
func (run *rotationRun) verifyOldPassword() RotationStage {
	key, _, err := run.keys.VerifyPassword(run.ctx, run.userID, run.currentPassword)
	if err != nil {
		run.err = fmt.Errorf("%w: %w", ErrIncorrectPassword, err)
		return StageAborted
	}

	run.oldKey = key
	return StageFetchingDrafts
}

// fetchDrafts loads the whole corpus, soft-deleted drafts included — they
// must migrate too or they become unreadable after the old salt is gone.
func (run *rotationRun) fetchDrafts() RotationStage {
	log := logger.FromContext(run.ctx)

	drafts, err := run.drafts.GetAllDrafts(run.ctx, run.userID)
	if err != nil {
		log.Err(err).
			Str("func", "rotationRun.fetchDrafts").
			Str("user_id", run.userID).
			Msg("failed to fetch drafts, rotation aborted before any mutation")
		run.err = fmt.Errorf("fetch drafts: %w", err)
		return StageAborted
	}

	run.encrypted = drafts
	return StageDecryptingWithOldKey
}

// decryptWithOldKey is the de facto password verification: PBKDF2 cannot
// validate a password by itself, so a single decryption failure here proves
// the supplied current password wrong and aborts the whole operation. The
// identity provider has not been called yet.
func (run *rotationRun) decryptWithOldKey() RotationStage {
	run.decrypted = make([]models.Draft, 0, len(run.encrypted))

	for _, enc := range run.encrypted {
		draft, err := run.cipher.DecryptDraftWithKey(enc, run.oldKey)
		if err != nil {
			run.err = fmt.Errorf("%w: draft %s: %w", ErrIncorrectPassword, enc.ID, err)
			return StageAborted
		}
		run.decrypted = append(run.decrypted, draft)
	}

	return StageUpdatingCredential
}

// updateCredential asks the identity provider to accept the new password.
// Failure here is still a clean abort: only old ciphertext exists, consistent
// with the old password that remains in force.
func (run *rotationRun) updateCredential() RotationStage {
	if err := run.identity.UpdatePassword(run.ctx, run.userID, run.currentPassword, run.newPassword); err != nil {
		run.err = fmt.Errorf("update credential: %w", err)
		return StageAborted
	}

	run.result.PasswordChanged = true
	return StageDerivingNewKey
}

// deriveNewKey generates the new salt and key. Any failure from here on is
// past the partial-failure boundary: the credential has changed, so the error
// must say so instead of claiming a clean abort.
func (run *rotationRun) deriveNewKey() RotationStage {
	salt, err := run.keys.GenerateNewSalt()
	if err != nil {
		run.err = fmt.Errorf("%w: generate new salt: %w", ErrRotationHalted, err)
		return StageAborted
	}

	run.newSalt = salt
	run.newKey = run.keys.DeriveNewKey(run.newPassword, salt)
	return StageReEncrypting
}

// reEncrypt produces a replacement ciphertext triple for every draft, with a
// fresh IV per draft, keyed by the original identifier.
func (run *rotationRun) reEncrypt() RotationStage {
	run.updates = make([]models.CipherUpdate, 0, len(run.decrypted))

	for _, draft := range run.decrypted {
		enc, err := run.cipher.EncryptDraftWithKey(draft, run.newKey)
		if err != nil {
			run.err = fmt.Errorf("%w: re-encrypt draft %s: %w", ErrRotationHalted, draft.ID, err)
			return StageAborted
		}
		run.updates = append(run.updates, models.CipherUpdate{
			ID:            enc.ID,
			CipherContent: enc.CipherContent,
			CipherMeta:    enc.CipherMeta,
			IV:            enc.IV,
		})
	}

	return StagePersistingDrafts
}

// persistDrafts writes the new ciphertexts one draft at a time, best-effort.
// A per-draft failure does not abort the stage; the counts in the result let
// the UI warn that some drafts remain under the old key.
func (run *rotationRun) persistDrafts() RotationStage {
	log := logger.FromContext(run.ctx)

	for _, update := range run.updates {
		if err := run.drafts.UpdateDraftCiphers(run.ctx, run.userID, update); err != nil {
			log.Err(err).
				Str("func", "rotationRun.persistDrafts").
				Str("user_id", run.userID).
				Str("draft_id", update.ID).
				Msg("failed to persist re-encrypted draft, it remains under the old key")
			run.result.DraftsFailed++
			continue
		}
		run.result.DraftsReEncrypted++
	}

	return StageUpdatingSalt
}

// updateSalt replaces the persisted salt. On failure the in-memory key is
// still valid for this session, but re-derivation on the next fresh login
// would break — so the replacement is handed to the retry queue instead of
// being silently dropped.
func (run *rotationRun) updateSalt() RotationStage {
	log := logger.FromContext(run.ctx)

	if err := run.registry.UpdateSalt(run.ctx, run.userID, run.newSalt); err != nil {
		log.Err(err).
			Str("func", "rotationRun.updateSalt").
			Str("user_id", run.userID).
			Msg("failed to replace persisted salt, scheduling retry")

		if run.retries != nil {
			run.retries.Enqueue(run.userID, run.newSalt)
		}
		return StageCommittingKey
	}

	run.result.SaltUpdated = true
	return StageCommittingKey
}

// commitKey overwrites the key store with the new key and salt. This is
// deliberately last: ciphertext and salt are persisted first so that a crash
// mid-rotation leaves the session able to fall back to the old key for
// not-yet-migrated drafts.
func (run *rotationRun) commitKey() RotationStage {
	run.keys.UpdateStoredKey(run.newKey, run.newSalt)
	return StageDone
}
