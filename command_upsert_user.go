package meet

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// UpsertUserMessage carries the caller-supplied profile fields. The uid comes
// from the payload, not the invocation identity: this operation covers the
// administrative/bootstrap case where the caller provisions other users.
type UpsertUserMessage struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"displayName"`
	Email       string  `json:"email"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

func (e UpsertUserMessage) Type() string { return "user.upsert" }

// Validate will run validation rules
func (e UpsertUserMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UID, validation.Required, validation.By(notBlank)),
		validation.Field(&e.DisplayName, validation.Required, validation.By(notBlank)),
		validation.Field(&e.Email, validation.Required, validation.By(containsAtSign)),
	)
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}

func containsAtSign(value any) error {
	s, _ := value.(string)
	if !strings.Contains(s, "@") {
		return fmt.Errorf("must contain @")
	}
	return nil
}

// UpsertUserResult reports which branch the upsert took.
type UpsertUserResult struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// UpsertUserHandler creates or updates a profile record, then mirrors the
// result into the external directory best-effort.
type UpsertUserHandler struct {
	profiles  Profiles
	directory Directory
	logger    Logger
}

// NewUpsertUserHandler creates the profile upsert handler.
func NewUpsertUserHandler(profiles Profiles, directory Directory, logger Logger) *UpsertUserHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return &UpsertUserHandler{
		profiles:  profiles,
		directory: directory,
		logger:    logger,
	}
}

func (h *UpsertUserHandler) Execute(ctx context.Context, event UpsertUserMessage) (*UpsertUserResult, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user upsert",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *UpsertUserHandler) execute(ctx context.Context, event UpsertUserMessage) (*UpsertUserResult, error) {
	if err := event.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid user payload").
			WithTextCode(TextCodeInvalidUserPayload).
			WithCode(goerrors.CodeBadRequest)
	}

	profile, created, err := h.profiles.Upsert(ctx, ProfileInput{
		UID:         event.UID,
		DisplayName: event.DisplayName,
		Email:       event.Email,
		PhotoURL:    event.PhotoURL,
	})
	if err != nil {
		return nil, goerrors.Wrap(err, ErrStoreFailure.Category, ErrStoreFailure.Message).
			WithTextCode(ErrStoreFailure.TextCode).
			WithCode(goerrors.CodeInternal)
	}

	// The store is the source of truth; the directory mirror runs strictly
	// after the committed write and its failure never fails the operation.
	photoURL := ""
	if event.PhotoURL != nil {
		photoURL = *event.PhotoURL
	}
	if err := h.directory.RegisterOrUpdate(ctx, event.UID, event.DisplayName, photoURL); err != nil {
		h.logger.Error("directory registration failed for %s: %s", event.UID, err)
	}

	verb := "updated"
	if created {
		verb = "created"
	}

	return &UpsertUserResult{
		Created: created,
		Message: fmt.Sprintf("user %s %s", profile.UID, verb),
	}, nil
}
