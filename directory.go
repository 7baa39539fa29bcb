package meet

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// DefaultTokenTTL is how long minted communication tokens stay valid.
var DefaultTokenTTL = 24 * time.Hour

// CommClaims are the claims carried by a minted communication token.
type CommClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid"`
	UserRole string `json:"user_role,omitempty"`
}

// TokenDirectoryConfig configures the bundled Directory implementation.
type TokenDirectoryConfig struct {
	SigningKey []byte
	Issuer     string
	Audience   jwt.ClaimStrings

	// TokenTTL overrides DefaultTokenTTL when positive.
	TokenTTL time.Duration

	// RegisterURL receives profile mirror updates via POST. Empty disables
	// the mirror, turning RegisterOrUpdate into a no-op.
	RegisterURL string

	HTTPClient *http.Client
	Logger     Logger
}

// TokenDirectory implements the Directory interface. It signs communication
// tokens locally with HS256 and mirrors profile registrations to a remote
// endpoint.
type TokenDirectory struct {
	cfg        TokenDirectoryConfig
	ttl        time.Duration
	httpClient *http.Client
	logger     Logger
}

var _ Directory = (*TokenDirectory)(nil)

// NewTokenDirectory creates a new TokenDirectory instance
func NewTokenDirectory(cfg TokenDirectoryConfig) *TokenDirectory {
	if cfg.Logger == nil {
		cfg.Logger = defLogger{}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &TokenDirectory{
		cfg:        cfg,
		ttl:        ttl,
		httpClient: client,
		logger:     cfg.Logger,
	}
}

// Mint issues a communication token bound to the identity, expiring one TTL
// after issuance.
func (d *TokenDirectory) Mint(ctx context.Context, identity Identity) (*IssuedToken, error) {
	if identity == nil || identity.ID() == "" {
		return nil, errors.New("identity is required", errors.CategoryBadInput)
	}

	now := time.Now()
	expiresAt := now.Add(d.ttl)

	claims := &CommClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    d.cfg.Issuer,
			Subject:   identity.ID(),
			Audience:  d.cfg.Audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UID:      identity.ID(),
		UserRole: identity.Role(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(d.cfg.SigningKey)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to sign communication token")
	}

	return &IssuedToken{
		Token:     signed,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

type registerPayload struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// RegisterOrUpdate mirrors the profile into the remote directory. Callers
// treat failures as best-effort; this method only reports them.
func (d *TokenDirectory) RegisterOrUpdate(ctx context.Context, uid, displayName, photoURL string) error {
	if d.cfg.RegisterURL == "" {
		return nil
	}

	body, err := json.Marshal(registerPayload{
		UID:         uid,
		DisplayName: displayName,
		PhotoURL:    photoURL,
	})
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to encode directory registration")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.RegisterURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to build directory registration request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "directory registration request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errors.New("directory registration rejected", errors.CategoryInternal).
			WithMetadata(map[string]any{
				"status": resp.StatusCode,
				"body":   string(raw),
				"uid":    uid,
			})
	}

	return nil
}
