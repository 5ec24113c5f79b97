package storage

import "time"

// Session keeps the last health-report image a user uploaded. ImageBase64
// is the transport encoding of the file at ImagePath, cached at receipt
// time so a question does not re-read the file.
type Session struct {
	UserID      string    `bson:"user_id"`
	ImagePath   string    `bson:"image_path"`
	ImageBase64 string    `bson:"image_base64"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (s *Session) HasImage() bool {
	return s != nil && s.ImageBase64 != ""
}

type SessionStorage interface {
	// Get returns the session for userID, or nil when the user has none.
	// Never creates anything.
	Get(userID string) (*Session, error)
	// GetOrCreate returns the session for userID, creating an empty one
	// on first contact.
	GetOrCreate(userID string) (*Session, error)
	// UpdateImage records a newly received image for userID, creating the
	// session if needed.
	UpdateImage(userID, path, encoded string) error
	// Delete removes the session entirely; deleting an unknown user is
	// not an error.
	Delete(userID string) error
	Close() error
}
