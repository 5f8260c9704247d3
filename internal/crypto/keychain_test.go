package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NormalizeKey ─────────────────────────────────────────────────────────────

func TestNormalizeKey_Table(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       string
	}{
		{
			name:       "short passphrase is repeated",
			passphrase: "afternoon",
			want:       "afternoonafternoonafternoonafter",
		},
		{
			name:       "single byte",
			passphrase: "x",
			want:       strings.Repeat("x", 32),
		},
		{
			name:       "exactly 32 bytes is kept",
			passphrase: "0123456789abcdef0123456789abcdef",
			want:       "0123456789abcdef0123456789abcdef",
		},
		{
			name:       "longer passphrase is truncated",
			passphrase: "0123456789abcdef0123456789abcdefTAIL",
			want:       "0123456789abcdef0123456789abcdef",
		},
		{
			name:       "multi-byte runes use raw bytes",
			passphrase: "ключ",
			want:       strings.Repeat("ключ", 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NormalizeKey(tt.passphrase)
			require.NoError(t, err)
			assert.Len(t, key, KeySize)
			assert.Equal(t, []byte(tt.want), key)
		})
	}
}

func TestNormalizeKey_Empty(t *testing.T) {
	key, err := NormalizeKey("")

	assert.Nil(t, key)
	assert.True(t, errors.Is(err, ErrEmptyPassphrase))
}

func TestNormalizeKey_Deterministic(t *testing.T) {
	k1, err := NormalizeKey("same passphrase")
	require.NoError(t, err)
	k2, err := NormalizeKey("same passphrase")
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
}

// Documented weakness: repetitions sharing a prefix collide.
func TestNormalizeKey_RepeatedPrefixCollides(t *testing.T) {
	k1, err := NormalizeKey("ab")
	require.NoError(t, err)
	k2, err := NormalizeKey("abab")
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
}

// ── KeyChain ─────────────────────────────────────────────────────────────────

func TestKeyChain_NormalizeKeyDelegates(t *testing.T) {
	kc := NewKeyChain()

	key, err := kc.NormalizeKey("afternoon")
	require.NoError(t, err)

	want, _ := NormalizeKey("afternoon")
	assert.Equal(t, want, key)
}

func TestKeyChain_GenerateNonce_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	n1, err := kc.GenerateNonce()
	require.NoError(t, err)
	n2, err := kc.GenerateNonce()
	require.NoError(t, err)

	assert.Len(t, n1, NonceSize)
	assert.Len(t, n2, NonceSize)
	assert.False(t, bytes.Equal(n1, n2), "expected nonces to differ")
}

func TestKeyChain_GenerateNonce_ShortRandomSource(t *testing.T) {
	kc := &keyChain{random: bytes.NewReader([]byte{1, 2, 3})}

	nonce, err := kc.GenerateNonce()

	assert.Nil(t, nonce)
	require.Error(t, err)
}

func TestKeyChain_GenerateNonce_UsesRandomSource(t *testing.T) {
	src := bytes.Repeat([]byte{0xAB}, NonceSize)
	kc := &keyChain{random: bytes.NewReader(src)}

	nonce, err := kc.GenerateNonce()

	require.NoError(t, err)
	assert.Equal(t, src, nonce)
}
