package meet

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// RouteRegistrar captures the router methods used by the controller.
type RouteRegistrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}

// IdentityResolver extracts the verified caller identity from a request
// context. The authentication middleware in front of the routes decides what
// lives in locals; the default resolver expects an Identity under the
// configured key.
type IdentityResolver func(ctx router.Context) (Identity, bool)

// HTTPConfig configures the HTTP controller.
type HTTPConfig struct {
	// SessionContextKey is the router locals key holding the caller identity
	// (default: "user")
	SessionContextKey string

	// IdentityResolver overrides identity extraction from the request.
	IdentityResolver IdentityResolver

	Logger Logger
}

// HTTPController exposes the four operations as JSON routes. It is a
// convenience surface; the handlers remain usable without it.
type HTTPController struct {
	issueToken    *IssueTokenHandler
	upsertUser    *UpsertUserHandler
	readProfile   *ReadProfileHandler
	createSession *CreateSessionHandler
	config        HTTPConfig
}

// NewHTTPController wires the handlers around shared store and directory
// clients.
func NewHTTPController(repo RepositoryManager, directory Directory, cfg HTTPConfig) *HTTPController {
	if cfg.SessionContextKey == "" {
		cfg.SessionContextKey = "user"
	}
	if cfg.Logger == nil {
		cfg.Logger = defLogger{}
	}
	if cfg.IdentityResolver == nil {
		key := cfg.SessionContextKey
		cfg.IdentityResolver = func(ctx router.Context) (Identity, bool) {
			identity, ok := ctx.Locals(key).(Identity)
			if !ok || identity == nil {
				return nil, false
			}
			return identity, true
		}
	}

	return &HTTPController{
		issueToken:    NewIssueTokenHandler(directory, cfg.Logger),
		upsertUser:    NewUpsertUserHandler(repo.Profiles(), directory, cfg.Logger),
		readProfile:   NewReadProfileHandler(repo.Profiles(), nil, cfg.Logger),
		createSession: NewCreateSessionHandler(repo.Sessions(), cfg.Logger),
		config:        cfg,
	}
}

// RegisterMeetRoutes registers the four operations on the route registrar.
func RegisterMeetRoutes(group RouteRegistrar, controller *HTTPController) {
	group.Post("/token", controller.IssueToken)
	group.Post("/users", controller.UpsertUser)
	group.Get("/profile", controller.ReadProfile)
	group.Post("/sessions", controller.CreateSession)
}

// IssueToken mints a communication token for the verified caller.
func (c *HTTPController) IssueToken(ctx router.Context) error {
	result, err := c.issueToken.Execute(c.callContext(ctx), IssueTokenMessage{})
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(router.StatusOK, result)
}

// UpsertUser creates or updates a profile record.
func (c *HTTPController) UpsertUser(ctx router.Context) error {
	payload := new(UpsertUserMessage)
	if err := ctx.Bind(payload); err != nil {
		return c.handleError(ctx, errors.Wrap(err, errors.CategoryBadInput, "failed to parse user payload").
			WithTextCode(TextCodeInvalidUserPayload).
			WithCode(errors.CodeBadRequest))
	}

	result, err := c.upsertUser.Execute(ctx.Context(), *payload)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(router.StatusOK, result)
}

// ReadProfile returns the caller's profile, or another user's when the
// caller is an admin.
func (c *HTTPController) ReadProfile(ctx router.Context) error {
	msg := ReadProfileMessage{UserID: ctx.Query("userId")}

	result, err := c.readProfile.Execute(c.callContext(ctx), msg)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(router.StatusOK, result)
}

// CreateSession creates a meeting session for the verified caller.
func (c *HTTPController) CreateSession(ctx router.Context) error {
	payload := new(CreateSessionMessage)
	if err := ctx.Bind(payload); err != nil {
		return c.handleError(ctx, errors.Wrap(err, errors.CategoryBadInput, "failed to parse session payload").
			WithTextCode(TextCodeInvalidSession).
			WithCode(errors.CodeBadRequest))
	}

	result, err := c.createSession.Execute(c.callContext(ctx), *payload)
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(router.StatusOK, result)
}

func (c *HTTPController) callContext(ctx router.Context) context.Context {
	rctx := ctx.Context()
	if identity, ok := c.config.IdentityResolver(ctx); ok {
		rctx = WithIdentity(rctx, identity)
	}
	return rctx
}

func (c *HTTPController) handleError(ctx router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "unexpected server error").
			WithCode(errors.CodeInternal)
	}

	c.config.Logger.Error("request failed [%s/%s]: %s", richErr.Category, richErr.TextCode, richErr.Message)

	return ctx.JSON(statusForCategory(richErr), map[string]any{
		"error":     richErr.Message,
		"text_code": richErr.TextCode,
	})
}

func statusForCategory(richErr *errors.Error) int {
	switch richErr.Category {
	case errors.CategoryAuth:
		return router.StatusUnauthorized
	case errors.CategoryAuthz:
		return router.StatusForbidden
	case errors.CategoryBadInput, errors.CategoryValidation:
		return router.StatusBadRequest
	case errors.CategoryNotFound:
		return router.StatusNotFound
	case errors.CategoryConflict:
		return router.StatusConflict
	default:
		return router.StatusInternalServerError
	}
}
