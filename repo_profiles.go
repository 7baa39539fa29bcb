package meet

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// ProfileInput carries the caller-supplied fields of a profile upsert.
// A nil PhotoURL clears any stored photo URL on update.
type ProfileInput struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    *string
}

// Profiles is the persistence interface for user profile records.
type Profiles interface {
	// Get is a point lookup; it returns (nil, nil) when no record exists.
	Get(ctx context.Context, uid string) (*UserProfile, error)
	GetTx(ctx context.Context, tx bun.IDB, uid string) (*UserProfile, error)

	// Upsert creates the record when absent, otherwise overwrites display
	// name, email, and photo URL in place. Creation timestamps are set once;
	// the role survives updates untouched. The boolean reports whether the
	// record was created.
	Upsert(ctx context.Context, input ProfileInput) (*UserProfile, bool, error)
}

type profiles struct {
	db *bun.DB
}

var _ Profiles = (*profiles)(nil)

// NewProfilesRepository creates the Bun-backed profile store adapter.
func NewProfilesRepository(db *bun.DB) Profiles {
	return &profiles{db: db}
}

func (r *profiles) Get(ctx context.Context, uid string) (*UserProfile, error) {
	return r.GetTx(ctx, r.db, uid)
}

func (r *profiles) GetTx(ctx context.Context, tx bun.IDB, uid string) (*UserProfile, error) {
	record := &UserProfile{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.uid = ?", uid).
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

func (r *profiles) Upsert(ctx context.Context, input ProfileInput) (*UserProfile, bool, error) {
	var record *UserProfile
	created := false

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		existing, err := r.GetTx(ctx, tx, input.UID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		if existing == nil {
			record = &UserProfile{
				UID:         input.UID,
				DisplayName: input.DisplayName,
				Email:       input.Email,
				PhotoURL:    input.PhotoURL,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
				return err
			}
			created = true
			return nil
		}

		existing.DisplayName = input.DisplayName
		existing.Email = input.Email
		existing.PhotoURL = input.PhotoURL
		existing.UpdatedAt = now

		_, err = tx.NewUpdate().
			Model(existing).
			Column("display_name", "email", "photo_url", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}

		record = existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return record, created, nil
}
