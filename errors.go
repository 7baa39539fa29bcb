package meet

import "github.com/goliatone/go-errors"

const (
	TextCodeNoIdentity         = "meet_no_verified_identity"
	TextCodeInvalidUserPayload = "meet_invalid_user_payload"
	TextCodeInvalidSession     = "meet_invalid_session_payload"
	TextCodeProfileReadDenied  = "meet_profile_read_denied"
	TextCodeProfileNotFound    = "meet_profile_not_found"
	TextCodeTokenIssueFailed   = "meet_token_issue_failed"
	TextCodeStoreFailure       = "meet_store_failure"
)

// ErrNoVerifiedIdentity is returned when the invocation context carries no
// verified caller identity.
var ErrNoVerifiedIdentity = errors.New("no verified identity in call context", errors.CategoryAuth).
	WithTextCode(TextCodeNoIdentity).
	WithCode(errors.CodeUnauthorized)

// ErrProfileReadDenied is returned when the caller may not read the requested
// profile. The policy fails closed, so a store failure during the admin check
// surfaces as this same error.
var ErrProfileReadDenied = errors.New("not allowed to read this profile", errors.CategoryAuthz).
	WithTextCode(TextCodeProfileReadDenied).
	WithCode(errors.CodeForbidden)

// ErrProfileNotFound is returned when the requested profile does not exist.
var ErrProfileNotFound = errors.New("user profile not found", errors.CategoryNotFound).
	WithTextCode(TextCodeProfileNotFound).
	WithCode(errors.CodeNotFound)

// ErrTokenIssueFailed is the generic failure surfaced when the directory
// cannot mint a token; the underlying cause travels only as the wrapped error.
var ErrTokenIssueFailed = errors.New("unable to issue communication token", errors.CategoryInternal).
	WithTextCode(TextCodeTokenIssueFailed).
	WithCode(errors.CodeInternal)

// ErrStoreFailure is the generic failure surfaced when the profile or session
// store misbehaves outside the authorization path.
var ErrStoreFailure = errors.New("profile store request failed", errors.CategoryInternal).
	WithTextCode(TextCodeStoreFailure).
	WithCode(errors.CodeInternal)
