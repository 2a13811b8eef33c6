package keystore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vanda-app/vanda-client/internal/common"
	"github.com/vanda-app/vanda-client/internal/cryptox"
)

const (
	secretFileName = "keystore.secret"
	secretSize     = 32
	saltSize       = 16
	filePerm       = 0o600
	dirPerm        = 0o700
)

// FileStore keeps each value in its own file under dir, encrypted with
// AES-GCM. The encryption key is derived (argon2id) from a random
// per-install secret created on first use and stored next to the values
// with 0600 permissions.
type FileStore struct {
	dir string
}

// NewFileStore opens (creating if needed) a store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, err
	}
	s := &FileStore{dir: dir}
	if _, err := s.loadOrCreateSecret(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultDir returns the platform config directory for the client,
// e.g. ~/.config/vanda on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "vanda"), nil
}

func (s *FileStore) loadOrCreateSecret() ([]byte, error) {
	path := filepath.Join(s.dir, secretFileName)

	secret, err := os.ReadFile(path)
	if err == nil && len(secret) == secretSize {
		return secret, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	secret = common.GenerateRandByteArray(secretSize)
	if err := os.WriteFile(path, secret, filePerm); err != nil {
		return nil, err
	}
	return secret, nil
}

// envelope is the on-disk record: a fresh salt and nonce per write.
type envelope struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".enc")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	secret, err := s.loadOrCreateSecret()
	if err != nil {
		return nil, err
	}

	derived := cryptox.DeriveKey(secret, env.Salt)
	return cryptox.Open(env.Ciphertext, env.Nonce, derived)
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	secret, err := s.loadOrCreateSecret()
	if err != nil {
		return err
	}

	salt := common.GenerateRandByteArray(saltSize)
	derived := cryptox.DeriveKey(secret, salt)

	ciphertext, nonce, err := cryptox.Seal(value, derived)
	if err != nil {
		return err
	}

	data, err := json.Marshal(envelope{Salt: salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return err
	}

	// Write-then-rename so a crash never leaves a truncated record.
	tmp := s.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return err
	}
	return os.Rename(tmp, s.keyPath(key))
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.keyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ Store = (*FileStore)(nil)
