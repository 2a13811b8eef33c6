package keystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", []byte("tok-123")))

	got, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-123"), got)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "auth_token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", []byte("tok-123")))
	require.NoError(t, s.Delete(ctx, "auth_token"))
	require.NoError(t, s.Delete(ctx, "auth_token")) // second delete: no error

	_, err = s.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_ValueIsNotStoredInPlaintext(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "auth_token", []byte("tok-123")))

	raw, err := os.ReadFile(filepath.Join(dir, "auth_token.enc"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "tok-123")
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", []byte("old")))
	require.NoError(t, s.Set(ctx, "auth_token", []byte("new")))

	got, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "auth_token", []byte("tok-123")))

	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := s2.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-123"), got)
}
