package session

import (
	"context"
	"errors"
	"io/fs"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

const tokenFileName = "session.json"

// FileStore keeps a single session in a file readable only by its owner. It
// backs labctl, where there is one operator per config directory.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultTokenFile is <user config dir>/medilabx/session.json.
func DefaultTokenFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "medilabx", tokenFileName), nil
}

// Save ignores ttl; the lab backend decides when the token stops working.
func (s *FileStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = os.MkdirAll(filepath.Dir(s.Path), 0o700)
	if err != nil {
		return exceptions.ErrTokenFileWrite(err, s.Path)
	}
	err = os.WriteFile(s.Path, data, 0o600)
	if err != nil {
		return exceptions.ErrTokenFileWrite(err, s.Path)
	}
	return nil
}

// Find loads the stored session. An empty sessionID matches whatever session
// is stored.
func (s *FileStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrTokenFileRead(err, s.Path)
	}

	session := new(models.Session)
	err = json.Unmarshal(data, session)
	if err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}
	if sessionID != "" && session.ID != sessionID {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *FileStore) Delete(ctx context.Context, sessionID string) error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exceptions.ErrTokenFileWrite(err, s.Path)
	}
	return nil
}

func (s *FileStore) Current(ctx context.Context) (*models.Session, error) {
	return s.Find(ctx, "")
}

// Token makes the store usable as the lab API clients' token source.
func (s *FileStore) Token(ctx context.Context) (string, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return "", exceptions.ErrTokenMissing(err)
	}
	if session.Token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return session.Token, nil
}
