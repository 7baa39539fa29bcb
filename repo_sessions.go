package meet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Sessions is the persistence interface for meeting session records.
type Sessions interface {
	// Create stores a new session record. The generated identifier scheme
	// makes collisions a theoretical case only; when one does happen the
	// driver's key-constraint error is returned as-is.
	Create(ctx context.Context, session *MeetingSession) error

	// FindByID returns (nil, nil) when no record exists.
	FindByID(ctx context.Context, id string) (*MeetingSession, error)
}

type sessions struct {
	db *bun.DB
}

var _ Sessions = (*sessions)(nil)

// NewSessionsRepository creates the Bun-backed session store adapter.
func NewSessionsRepository(db *bun.DB) Sessions {
	return &sessions{db: db}
}

func (r *sessions) Create(ctx context.Context, session *MeetingSession) error {
	_, err := r.db.NewInsert().Model(session).Exec(ctx)
	return err
}

func (r *sessions) FindByID(ctx context.Context, id string) (*MeetingSession, error) {
	record := &MeetingSession{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
