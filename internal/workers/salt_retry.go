// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/service"
	"github.com/quietpage/quietpage/models"
)

// SaltRetryJob re-attempts salt replacements that failed during password
// rotation. Rotation hands the new salt over via Enqueue and moves on; the
// job keeps retrying on a fixed interval until the remote store accepts the
// replacement. One pending salt per user — a newer enqueue for the same user
// supersedes the older one.
type SaltRetryJob struct {
	salts    service.SaltStore
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	pending map[string][]byte

	stop chan struct{}
	done chan struct{}
}

var _ service.SaltRetryQueue = (*SaltRetryJob)(nil)
var _ Worker = (*SaltRetryJob)(nil)

func NewSaltRetryJob(salts service.SaltStore, interval time.Duration, logger *logger.Logger) *SaltRetryJob {
	return &SaltRetryJob{
		salts:    salts,
		interval: interval,
		logger:   logger,
		pending:  make(map[string][]byte),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Enqueue implements [service.SaltRetryQueue].
func (j *SaltRetryJob) Enqueue(userID string, salt []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending[userID] = salt

	j.logger.Warn().
		Str("func", "*SaltRetryJob.Enqueue").
		Str("user_id", userID).
		Msg("salt replacement queued for retry")
}

// Run implements [Worker]. It starts the retry loop in its own goroutine and
// returns immediately.
func (j *SaltRetryJob) Run() {
	go j.loop()
}

// Stop terminates the retry loop and waits for it to exit. Pending
// replacements that have not succeeded yet are dropped; the drafts are
// already re-encrypted under the new key, so the next rotation attempt will
// re-derive the salt state from the server.
func (j *SaltRetryJob) Stop() {
	close(j.stop)
	<-j.done
}

func (j *SaltRetryJob) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.flush()
		}
	}
}

// flush attempts every pending replacement once. Successful entries are
// removed; failures stay queued for the next tick.
func (j *SaltRetryJob) flush() {
	j.mu.Lock()
	batch := make(map[string][]byte, len(j.pending))
	for userID, salt := range j.pending {
		batch[userID] = salt
	}
	j.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	ctx := context.Background()
	for userID, salt := range batch {
		err := j.salts.ReplaceSalt(ctx, saltRecord(userID, salt))
		if err != nil {
			j.logger.Err(err).
				Str("func", "*SaltRetryJob.flush").
				Str("user_id", userID).
				Msg("salt replacement retry failed")
			continue
		}

		j.mu.Lock()
		// Only clear if no newer salt was enqueued while we were flushing.
		if current, ok := j.pending[userID]; ok && sameSalt(current, salt) {
			delete(j.pending, userID)
		}
		j.mu.Unlock()

		j.logger.Info().
			Str("func", "*SaltRetryJob.flush").
			Str("user_id", userID).
			Msg("salt replacement retry succeeded")
	}
}

// PendingCount reports how many users still have an unconfirmed salt
// replacement.
func (j *SaltRetryJob) PendingCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

func saltRecord(userID string, salt []byte) models.SaltRecord {
	return models.SaltRecord{
		UserID: userID,
		Salt:   crypto.EncodeBase64(salt),
	}
}

func sameSalt(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
