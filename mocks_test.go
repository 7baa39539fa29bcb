package meet_test

import (
	"context"
	"database/sql"
	"fmt"

	meet "github.com/goliatone/go-meet"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"
)

// MockDirectory implements meet.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Mint(ctx context.Context, identity meet.Identity) (*meet.IssuedToken, error) {
	args := m.Called(ctx, identity)
	if token, ok := args.Get(0).(*meet.IssuedToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectory) RegisterOrUpdate(ctx context.Context, uid, displayName, photoURL string) error {
	args := m.Called(ctx, uid, displayName, photoURL)
	return args.Error(0)
}

// MockProfiles implements meet.Profiles
type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Get(ctx context.Context, uid string) (*meet.UserProfile, error) {
	args := m.Called(ctx, uid)
	if profile, ok := args.Get(0).(*meet.UserProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfiles) GetTx(ctx context.Context, tx bun.IDB, uid string) (*meet.UserProfile, error) {
	args := m.Called(ctx, tx, uid)
	if profile, ok := args.Get(0).(*meet.UserProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfiles) Upsert(ctx context.Context, input meet.ProfileInput) (*meet.UserProfile, bool, error) {
	args := m.Called(ctx, input)
	if profile, ok := args.Get(0).(*meet.UserProfile); ok {
		return profile, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

// MockSessions implements meet.Sessions
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Create(ctx context.Context, session *meet.MeetingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessions) FindByID(ctx context.Context, id string) (*meet.MeetingSession, error) {
	args := m.Called(ctx, id)
	if session, ok := args.Get(0).(*meet.MeetingSession); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

// stubRepoManager hands the testify mocks to code that expects the full
// repository manager.
type stubRepoManager struct {
	profiles meet.Profiles
	sessions meet.Sessions
}

func (s stubRepoManager) Validate() error { return nil }
func (s stubRepoManager) MustValidate()  {}

func (s stubRepoManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return fmt.Errorf("transactions not supported in stub")
}

func (s stubRepoManager) Profiles() meet.Profiles { return s.profiles }
func (s stubRepoManager) Sessions() meet.Sessions { return s.sessions }

// testLogger records log lines so tests can assert on them.
type testLogger struct {
	errors []string
	infos  []string
	debugs []string
}

func (l *testLogger) Error(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *testLogger) Info(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *testLogger) Debug(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func callerIdentity(uid string, role meet.UserRole) meet.CallerIdentity {
	return meet.CallerIdentity{
		UserID:    uid,
		Name:      "Person " + uid,
		EmailAddr: uid + "@example.com",
		UserRole:  string(role),
	}
}

func identityContext(uid string, role meet.UserRole) context.Context {
	return meet.WithIdentity(context.Background(), callerIdentity(uid, role))
}
