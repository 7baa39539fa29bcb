package meet

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// IssueTokenMessage requests a communication token for the verified caller.
// It carries no fields: tokens are minted for the caller only.
type IssueTokenMessage struct{}

func (e IssueTokenMessage) Type() string { return "token.issue" }

// IssueTokenResult reports the minted token, its expiry in epoch
// milliseconds, and the issuance instant in ISO-8601.
type IssueTokenResult struct {
	Token       string `json:"token"`
	ExpiresAt   int64  `json:"expiresAt"`
	GeneratedAt string `json:"generatedAt"`
}

// IssueTokenHandler mints a communication token for the verified caller.
type IssueTokenHandler struct {
	directory Directory
	logger    Logger
}

// NewIssueTokenHandler creates the token issuance handler.
func NewIssueTokenHandler(directory Directory, logger Logger) *IssueTokenHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return &IssueTokenHandler{
		directory: directory,
		logger:    logger,
	}
}

func (h *IssueTokenHandler) Execute(ctx context.Context, event IssueTokenMessage) (*IssueTokenResult, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during token issuance",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *IssueTokenHandler) execute(ctx context.Context, _ IssueTokenMessage) (*IssueTokenResult, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	issued, err := h.directory.Mint(ctx, identity)
	if err != nil {
		h.logger.Error("directory token mint failed for %s: %s", identity.ID(), err)
		return nil, goerrors.Wrap(err, ErrTokenIssueFailed.Category, ErrTokenIssueFailed.Message).
			WithTextCode(ErrTokenIssueFailed.TextCode).
			WithCode(goerrors.CodeInternal)
	}

	return &IssueTokenResult{
		Token:       issued.Token,
		ExpiresAt:   issued.ExpiresAt.UnixMilli(),
		GeneratedAt: issued.IssuedAt.UTC().Format(time.RFC3339),
	}, nil
}
