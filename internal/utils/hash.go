package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the integrity
// hash key. InitHasherPool must run before the first Hash call.
var hasherPool sync.Pool

// InitHasherPool configures the package-level pool of HMAC-SHA256 hashers.
// The server and the client adapter both hash every draft batch they
// exchange, so pooling avoids re-allocating the HMAC state on each request.
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 digest of data with a pooled hasher. The
// hasher is reset before and after use, so no payload bytes survive in the
// pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes a hex-encoded HMAC-SHA256 digest of data under the
// given key. Unlike Hash it creates a fresh HMAC instance per call; the
// password verifier path uses it with a key distinct from the pool's.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
