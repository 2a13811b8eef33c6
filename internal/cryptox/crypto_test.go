package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicAnd32Bytes(t *testing.T) {
	a := DeriveKey([]byte("secret"), []byte("salt-123"))
	b := DeriveKey([]byte("secret"), []byte("salt-123"))
	require.Len(t, a, 32)
	require.Equal(t, a, b)
}

func TestDeriveKey_SaltChangesKey(t *testing.T) {
	a := DeriveKey([]byte("secret"), []byte("salt-1"))
	b := DeriveKey([]byte("secret"), []byte("salt-2"))
	require.False(t, bytes.Equal(a, b))
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))
	plaintext := []byte("tok-123")

	ciphertext, nonce, err := Seal(plaintext, key)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	got, err := Open(ciphertext, nonce, key)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))
	other := DeriveKey([]byte("other"), []byte("salt"))

	ciphertext, nonce, err := Seal([]byte("tok-123"), key)
	require.NoError(t, err)

	_, err = Open(ciphertext, nonce, other)
	require.Error(t, err)
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))

	ciphertext, nonce, err := Seal([]byte("tok-123"), key)
	require.NoError(t, err)

	ciphertext[0] ^= 0xff
	_, err = Open(ciphertext, nonce, key)
	require.Error(t, err)
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	_, _, err := Seal([]byte("x"), []byte("short"))
	require.Error(t, err)
}
