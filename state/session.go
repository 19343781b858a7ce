package state

import (
	"io/ioutil"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var sessionLogger = log.With().Str("logger_name", "state::session").Logger()

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is the identity the server hands out on first connect. The UUID
// lets a returning client rejoin its previous seat; the name is replayed
// so the player does not need to set it again.
type Session struct {
	UUID       string `json:"uuid"`
	PlayerName string `json:"player_name"`
}

// SessionStore persists the session between runs.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// FileSessionStore keeps the session as a small JSON file.
type FileSessionStore struct {
	fileName string
}

func NewFileSessionStore(fileName string) *FileSessionStore {
	return &FileSessionStore{fileName: fileName}
}

// Load returns the saved session, or nil when none exists yet.
func (f *FileSessionStore) Load() (*Session, error) {
	data, err := ioutil.ReadFile(f.fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "Error reading session file [%s]", f.fileName)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is not fatal. Start a fresh session.
		sessionLogger.Error().Err(err).
			Msgf("Session file [%s] could not be parsed. Discarding it.", f.fileName)
		return nil, nil
	}
	if session.UUID == "" {
		return nil, nil
	}
	return &session, nil
}

func (f *FileSessionStore) Save(session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "Error marshalling session")
	}
	dir := filepath.Dir(f.fileName)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "Error creating session directory [%s]", dir)
		}
	}
	if err := ioutil.WriteFile(f.fileName, data, 0o600); err != nil {
		return errors.Wrapf(err, "Error writing session file [%s]", f.fileName)
	}
	return nil
}

func (f *FileSessionStore) Clear() error {
	err := os.Remove(f.fileName)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "Error removing session file [%s]", f.fileName)
	}
	return nil
}

// MemorySessionStore keeps the session in memory only. Used in tests and
// when the user opts out of persistence.
type MemorySessionStore struct {
	session *Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Load() (*Session, error) {
	return m.session, nil
}

func (m *MemorySessionStore) Save(session *Session) error {
	m.session = session
	return nil
}

func (m *MemorySessionStore) Clear() error {
	m.session = nil
	return nil
}
