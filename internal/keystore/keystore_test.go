package keystore

import (
	"bytes"
	"testing"

	"github.com/quietpage/quietpage/internal/crypto"
)

func TestStore_InitiallyEmpty(t *testing.T) {
	s := New()

	if s.Has() {
		t.Fatalf("new store reports a key")
	}
	if s.Key() != nil {
		t.Fatalf("new store returned non-nil key")
	}
	if s.Salt() != nil {
		t.Fatalf("new store returned non-nil salt")
	}
}

func TestStore_SetThenGet(t *testing.T) {
	s := New()
	key := crypto.Key(bytes.Repeat([]byte{0x0F}, crypto.KeySize))
	salt := bytes.Repeat([]byte{0xA0}, crypto.SaltSize)

	s.Set(key, salt)

	if !s.Has() {
		t.Fatalf("store reports no key after Set")
	}
	if !bytes.Equal(s.Key(), key) {
		t.Fatalf("key mismatch after Set")
	}
	if !bytes.Equal(s.Salt(), salt) {
		t.Fatalf("salt mismatch after Set")
	}
}

func TestStore_SetOverwritesUnconditionally(t *testing.T) {
	s := New()

	first := crypto.Key(bytes.Repeat([]byte{0x01}, crypto.KeySize))
	second := crypto.Key(bytes.Repeat([]byte{0x02}, crypto.KeySize))

	s.Set(first, bytes.Repeat([]byte{0x01}, crypto.SaltSize))
	s.Set(second, bytes.Repeat([]byte{0x02}, crypto.SaltSize))

	if !bytes.Equal(s.Key(), second) {
		t.Fatalf("expected last write to win")
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := New()
	s.Set(crypto.Key(bytes.Repeat([]byte{0x03}, crypto.KeySize)), bytes.Repeat([]byte{0x03}, crypto.SaltSize))

	s.Clear()
	s.Clear() // safe when already empty

	if s.Has() || s.Key() != nil || s.Salt() != nil {
		t.Fatalf("store not empty after Clear")
	}
}

func TestStore_IndependentInstances(t *testing.T) {
	a := New()
	b := New()

	a.Set(crypto.Key(bytes.Repeat([]byte{0x04}, crypto.KeySize)), bytes.Repeat([]byte{0x04}, crypto.SaltSize))

	if b.Has() {
		t.Fatalf("setting one store leaked into another")
	}
}
