package meet

import (
	"time"

	"github.com/uptrace/bun"
)

// UserRole is the user's role
type UserRole string

const (
	// RoleGuest is a guest role (i.e. view)
	RoleGuest UserRole = "guest"
	// RoleMember is a member (i.e. view, edit)
	RoleMember UserRole = "member"
	// RoleAdmin is an admin role; admins may read other users' profiles
	RoleAdmin UserRole = "admin"
	// RoleOwner is an owner role (i.e. view, edit, create, delete)
	RoleOwner UserRole = "owner"
)

// UserProfile is the profile record keyed by the externally assigned uid.
// The uid is immutable and never regenerated; profiles are created on first
// upsert and updated in place afterwards, never deleted by this core.
type UserProfile struct {
	bun.BaseModel `bun:"table:user_profiles,alias:prf"`
	UID           string    `bun:"uid,pk" json:"uid"`
	DisplayName   string    `bun:"display_name,notnull" json:"display_name"`
	Email         string    `bun:"email,notnull" json:"email"`
	PhotoURL      *string   `bun:"photo_url" json:"photo_url,omitempty"`
	Role          UserRole  `bun:"user_role" json:"user_role,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// SessionStatus is the lifecycle state of a meeting session
type SessionStatus string

const (
	// SessionStatusActive is the initial status of every created session.
	// No update or termination path exists in this core.
	SessionStatusActive SessionStatus = "active"
)

// MeetingSession is a multi-participant session record. The participant set
// always includes the creator.
type MeetingSession struct {
	bun.BaseModel `bun:"table:meeting_sessions,alias:ses"`
	ID            string        `bun:"id,pk" json:"id"`
	CreatorID     string        `bun:"creator_id,notnull" json:"creator_id"`
	Participants  []string      `bun:"participants,notnull,type:jsonb" json:"participants"`
	Status        SessionStatus `bun:"status,notnull" json:"status"`
	CreatedAt     time.Time     `bun:"created_at,notnull" json:"created_at"`
}
