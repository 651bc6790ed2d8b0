package contracts

import (
	"context"
	"io"
	"time"

	"bimar-service/internal/app/models"
)

// RedisRepository marshals values to JSON on write. Get returns an empty
// string and no error when the key is absent or expired.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type SessionService interface {
	// CreateSession stores the session and returns a signed token whose only
	// claim is the session ID.
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) (token string, err error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// MailerService publishes notification intents for asynchronous delivery.
type MailerService interface {
	PublishIntent(ctx context.Context, intent *models.NotificationIntent) error
}

// SMTPService renders and sends a single intent; used by the mailer worker.
type SMTPService interface {
	Send(intent *models.NotificationIntent) error
}

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (objectPath string, err error)
}
