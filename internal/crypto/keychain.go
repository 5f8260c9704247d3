// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// random is the nonce source; crypto/rand.Reader unless replaced in tests.
	random io.Reader
}

// NewKeyChain constructs a [KeyChain] backed by crypto/rand.
func NewKeyChain() KeyChain {
	return &keyChain{random: rand.Reader}
}

// NormalizeKey implements [KeyChain]. See [NormalizeKey].
func (k *keyChain) NormalizeKey(passphrase string) ([]byte, error) {
	return NormalizeKey(passphrase)
}

// GenerateNonce implements [KeyChain]. It reads NonceSize bytes from the
// configured random source and fails if the read is short.
func (k *keyChain) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// NormalizeKey stretches or truncates the raw bytes of passphrase to exactly
// KeySize bytes: the bytes are repeated ceil(KeySize/n)+1 times and the first
// KeySize bytes are kept.
//
// This is not a KDF. There is no salt, so two passphrases whose repetition
// shares the same 32-byte prefix (e.g. "ab" and "abab") map to the same key.
func NormalizeKey(passphrase string) ([]byte, error) {
	raw := []byte(passphrase)
	if len(raw) == 0 {
		return nil, ErrEmptyPassphrase
	}

	repeats := (KeySize+len(raw)-1)/len(raw) + 1
	return bytes.Repeat(raw, repeats)[:KeySize], nil
}
