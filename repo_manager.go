package meet

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Profiles() Profiles
	Sessions() Sessions
}

type mngr struct {
	db       *bun.DB
	profiles Profiles
	sessions Sessions
}

// NewRepositoryManager wires the store adapters around a shared bun.DB.
// The handle is constructed once at startup and shared; adapters perform no
// client-side locking beyond what the driver provides.
func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:       db,
		profiles: NewProfilesRepository(db),
		sessions: NewSessionsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.profiles == nil {
		return errors.New("repository profiles should be initialized")
	}

	if m.sessions == nil {
		return errors.New("repository sessions should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Profiles() Profiles {
	return m.profiles
}

func (m mngr) Sessions() Sessions {
	return m.sessions
}
