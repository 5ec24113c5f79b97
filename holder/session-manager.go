package holder

import (
	"Healthscan/lib/sl"
	"Healthscan/storage"
	"fmt"
	"io"
	"log/slog"
)

// Session is an alias for storage.Session
type Session = storage.Session

// Manager ties the session registry to the attachment files on disk:
// receiving an image updates both, clearing a user removes both.
type Manager struct {
	storage storage.SessionStorage
	files   *storage.FileStore
	log     *slog.Logger
}

func NewManager(store storage.SessionStorage, files *storage.FileStore, log *slog.Logger) *Manager {
	return &Manager{
		storage: store,
		files:   files,
		log:     log.With(sl.Module("sessions")),
	}
}

// StoreImage saves the downloaded attachment, caches its encoding on the
// user's session and deletes the file it replaces.
func (m *Manager) StoreImage(userID, messageID string, content io.Reader) error {
	previous, err := m.storage.Get(userID)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	previousPath := ""
	if previous != nil {
		previousPath = previous.ImagePath
	}

	path, err := m.files.Save(messageID, content)
	if err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	encoded, err := m.files.Encode(path)
	if err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	if err = m.storage.UpdateImage(userID, path, encoded); err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	if previousPath != "" && previousPath != path {
		if err = m.files.Remove(previousPath); err != nil {
			m.log.Warn("removing superseded image", sl.User(userID), sl.Err(err))
		}
	}

	m.log.With(
		sl.User(userID),
		slog.String("path", path),
	).Info("image stored")
	return nil
}

// Image returns the cached encoding of the user's last image, if any.
func (m *Manager) Image(userID string) (string, bool) {
	session, err := m.storage.GetOrCreate(userID)
	if err != nil {
		m.log.Error("loading session", sl.User(userID), sl.Err(err))
		return "", false
	}
	if !session.HasImage() {
		return "", false
	}
	return session.ImageBase64, true
}

// Clear deletes the user's stored image file and removes the session.
// Clearing a user that was never seen is a true no-op, nothing is
// created just to be deleted.
func (m *Manager) Clear(userID string) {
	session, err := m.storage.Get(userID)
	if err != nil {
		m.log.Error("loading session", sl.User(userID), sl.Err(err))
	}
	if session != nil && session.ImagePath != "" {
		if err = m.files.Remove(session.ImagePath); err != nil {
			m.log.Warn("removing image", sl.User(userID), sl.Err(err))
		}
	}
	if err = m.storage.Delete(userID); err != nil {
		m.log.Error("deleting session", sl.User(userID), sl.Err(err))
	}
}

func (m *Manager) Close() error {
	return m.storage.Close()
}
