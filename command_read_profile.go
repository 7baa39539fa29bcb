package meet

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// ReadProfileMessage requests a profile. An empty UserID targets the caller's
// own profile.
type ReadProfileMessage struct {
	UserID string `json:"userId,omitempty"`
}

func (e ReadProfileMessage) Type() string { return "profile.read" }

// ReadProfileResult is the readable subset of a profile. Role and the update
// timestamp are never exposed; CreatedAt is nil when unset.
type ReadProfileResult struct {
	UID         string     `json:"uid"`
	DisplayName string     `json:"displayName"`
	Email       string     `json:"email"`
	PhotoURL    *string    `json:"photoURL,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// ReadProfileHandler loads a profile for the verified caller, applying the
// admin-only rule for cross-user reads.
type ReadProfileHandler struct {
	profiles Profiles
	policy   *ProfileReadPolicy
	logger   Logger
}

// NewReadProfileHandler creates the profile read handler.
func NewReadProfileHandler(profiles Profiles, policy *ProfileReadPolicy, logger Logger) *ReadProfileHandler {
	if logger == nil {
		logger = defLogger{}
	}
	if policy == nil {
		policy = NewProfileReadPolicy(profiles, logger)
	}
	return &ReadProfileHandler{
		profiles: profiles,
		policy:   policy,
		logger:   logger,
	}
}

func (h *ReadProfileHandler) Execute(ctx context.Context, event ReadProfileMessage) (*ReadProfileResult, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during profile read",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *ReadProfileHandler) execute(ctx context.Context, event ReadProfileMessage) (*ReadProfileResult, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	target := event.UserID
	if target == "" {
		target = identity.ID()
	}

	if target != identity.ID() {
		if err := h.policy.Authorize(ctx, identity.ID(), target); err != nil {
			return nil, err
		}
	}

	profile, err := h.profiles.Get(ctx, target)
	if err != nil {
		h.logger.Error("profile lookup failed for %s: %s", target, err)
		return nil, goerrors.Wrap(err, ErrStoreFailure.Category, ErrStoreFailure.Message).
			WithTextCode(ErrStoreFailure.TextCode).
			WithCode(goerrors.CodeInternal)
	}

	if profile == nil {
		return nil, goerrors.New(ErrProfileNotFound.Message, ErrProfileNotFound.Category).
			WithTextCode(ErrProfileNotFound.TextCode).
			WithCode(goerrors.CodeNotFound).
			WithMetadata(map[string]any{"uid": target})
	}

	var createdAt *time.Time
	if !profile.CreatedAt.IsZero() {
		t := profile.CreatedAt
		createdAt = &t
	}

	return &ReadProfileResult{
		UID:         profile.UID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		PhotoURL:    profile.PhotoURL,
		CreatedAt:   createdAt,
	}, nil
}
