package meet

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// CreateSessionMessage carries the requested participant identifiers.
// Ordering is irrelevant; the caller is added when missing.
type CreateSessionMessage struct {
	Participants []string `json:"participants"`
}

func (e CreateSessionMessage) Type() string { return "session.create" }

// Validate will run validation rules
func (e CreateSessionMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Participants, validation.Required, validation.Length(1, 0)),
	)
}

// CreateSessionResult reports the stored session.
type CreateSessionResult struct {
	SessionID    string   `json:"sessionId"`
	CreatedAt    string   `json:"createdAt"`
	Participants []string `json:"participants"`
}

// CreateSessionHandler creates a meeting session record for the verified
// caller. Creation is not idempotent: a retry produces a second session.
type CreateSessionHandler struct {
	sessions Sessions
	logger   Logger
}

// NewCreateSessionHandler creates the session creation handler.
func NewCreateSessionHandler(sessions Sessions, logger Logger) *CreateSessionHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return &CreateSessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *CreateSessionHandler) Execute(ctx context.Context, event CreateSessionMessage) (*CreateSessionResult, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during session creation",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *CreateSessionHandler) execute(ctx context.Context, event CreateSessionMessage) (*CreateSessionResult, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := event.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid session payload").
			WithTextCode(TextCodeInvalidSession).
			WithCode(goerrors.CodeBadRequest)
	}

	participants := append([]string(nil), event.Participants...)
	if !containsString(participants, identity.ID()) {
		participants = append(participants, identity.ID())
	}

	now := time.Now().UTC()
	session := &MeetingSession{
		ID:           NewSessionID(),
		CreatorID:    identity.ID(),
		Participants: participants,
		Status:       SessionStatusActive,
		CreatedAt:    now,
	}

	if err := h.sessions.Create(ctx, session); err != nil {
		h.logger.Error("session create failed for %s: %s", session.ID, err)
		return nil, goerrors.Wrap(err, ErrStoreFailure.Category, ErrStoreFailure.Message).
			WithTextCode(ErrStoreFailure.TextCode).
			WithCode(goerrors.CodeInternal)
	}

	return &CreateSessionResult{
		SessionID:    session.ID,
		CreatedAt:    now.Format(time.RFC3339),
		Participants: participants,
	}, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
