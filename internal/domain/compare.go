package domain

import "context"

// CompareSession persists one visitor's comparison selection so it
// survives reloads. Items holds the ordered property IDs as a
// comma-separated string; order is display order.
type CompareSession struct {
	BaseModel
	Token string `gorm:"size:64;uniqueIndex;not null" json:"token"`
	Items string `gorm:"size:255" json:"items"`
}

// CompareSessionRepository defines the data access interface for
// comparison sessions.
type CompareSessionRepository interface {
	Save(ctx context.Context, session *CompareSession) error
	GetByToken(ctx context.Context, token string) (*CompareSession, error)
	Delete(ctx context.Context, token string) error
}
