package meet

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// ProfileReadPolicy decides whether a requester may read a target profile.
// Reading your own profile is always allowed; reading anyone else's requires
// the requester's stored profile to carry the admin role. The check is a
// single hop: admin rights are neither inherited nor delegated.
type ProfileReadPolicy struct {
	profiles Profiles
	logger   Logger
}

// NewProfileReadPolicy creates the authorization policy for profile reads.
func NewProfileReadPolicy(profiles Profiles, logger Logger) *ProfileReadPolicy {
	if logger == nil {
		logger = defLogger{}
	}
	return &ProfileReadPolicy{
		profiles: profiles,
		logger:   logger,
	}
}

// Authorize fails closed: a store failure while loading the requester's
// profile is reported as the same denial a role violation produces. The true
// cause is logged so operators can tell the two apart.
func (p *ProfileReadPolicy) Authorize(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return nil
	}

	requester, err := p.profiles.Get(ctx, requesterID)
	if err != nil {
		p.logger.Error("profile read authorization lookup failed for %s: %s", requesterID, err)
		return goerrors.Wrap(err, ErrProfileReadDenied.Category, ErrProfileReadDenied.Message).
			WithTextCode(ErrProfileReadDenied.TextCode).
			WithCode(goerrors.CodeForbidden)
	}

	if !requester.IsAdmin() {
		return ErrProfileReadDenied
	}

	return nil
}
