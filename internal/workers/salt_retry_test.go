// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/mock"
	"github.com/quietpage/quietpage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSaltRetryJob_FlushSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltStore(ctrl)

	salt := []byte("0123456789abcdef")
	salts.EXPECT().ReplaceSalt(gomock.Any(), models.SaltRecord{
		UserID: "user-1",
		Salt:   crypto.EncodeBase64(salt),
	}).Return(nil)

	job := NewSaltRetryJob(salts, time.Hour, logger.Nop())
	job.Enqueue("user-1", salt)
	require.Equal(t, 1, job.PendingCount())

	job.flush()

	assert.Equal(t, 0, job.PendingCount())
}

func TestSaltRetryJob_FailureStaysQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltStore(ctrl)

	salts.EXPECT().ReplaceSalt(gomock.Any(), gomock.Any()).
		Return(errors.New("server unreachable")).Times(2)

	job := NewSaltRetryJob(salts, time.Hour, logger.Nop())
	job.Enqueue("user-1", []byte("0123456789abcdef"))

	job.flush()
	require.Equal(t, 1, job.PendingCount(), "failed replacement must stay queued")

	job.flush()
	assert.Equal(t, 1, job.PendingCount())
}

func TestSaltRetryJob_NewerEnqueueSupersedes(t *testing.T) {
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltStore(ctrl)

	first := []byte("first-salt-bytes")
	second := []byte("second-salt-byte")

	job := NewSaltRetryJob(salts, time.Hour, logger.Nop())
	job.Enqueue("user-1", first)
	job.Enqueue("user-1", second)

	require.Equal(t, 1, job.PendingCount(), "one pending salt per user")

	salts.EXPECT().ReplaceSalt(gomock.Any(), models.SaltRecord{
		UserID: "user-1",
		Salt:   crypto.EncodeBase64(second),
	}).Return(nil)

	job.flush()

	assert.Equal(t, 0, job.PendingCount())
}

func TestSaltRetryJob_EmptyFlushDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltStore(ctrl)
	// No ReplaceSalt expectations: an empty queue must not touch the store.

	job := NewSaltRetryJob(salts, time.Hour, logger.Nop())
	job.flush()

	assert.Equal(t, 0, job.PendingCount())
}

func TestSaltRetryJob_RunAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	salts := mock.NewMockSaltStore(ctrl)

	replaced := make(chan struct{}, 1)
	salts.EXPECT().ReplaceSalt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ models.SaltRecord) error {
			select {
			case replaced <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(1)

	job := NewSaltRetryJob(salts, 5*time.Millisecond, logger.Nop())
	job.Enqueue("user-1", []byte("0123456789abcdef"))
	job.Run()

	select {
	case <-replaced:
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop never attempted the replacement")
	}

	job.Stop()
	assert.Equal(t, 0, job.PendingCount())
}

func TestWorkers_RunStartsAll(t *testing.T) {
	ran := 0
	w := NewWorkers(workerFunc(func() { ran++ }), workerFunc(func() { ran++ }))

	w.Run()

	assert.Equal(t, 2, ran)
}

type workerFunc func()

func (f workerFunc) Run() { f() }
