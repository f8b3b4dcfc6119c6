package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// SessionObserver is told about every flip of the authenticated flag, after
// the transition that caused it has settled.
type SessionObserver func(ctx context.Context, snap domain.Session)

// SessionService is the session directory: the token, the user it belongs
// to, and the state machine between them.
//
//	Unauthenticated -> Optimistic(claims) -> Authenticated(profile)
//	                                      -> Unauthenticated (profile failed)
type SessionService struct {
	client *shopsdk.Client
	store  store.Store
	logger *slog.Logger
	api    *shopsdk.Session

	mu        sync.RWMutex
	token     string
	user      *domain.User
	state     domain.SessionState
	observers []SessionObserver
	announced bool
}

var _ shopsdk.TokenSource = (*SessionService)(nil)

// NewSessionService builds the directory. The returned service is also the
// token source of its gateway session.
func NewSessionService(client *shopsdk.Client, st store.Store, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SessionService{
		client: client,
		store:  st,
		logger: logger.With("component", "session"),
	}
	s.api = client.NewSession(s)
	return s
}

// Client returns the gateway for public operations.
func (s *SessionService) Client() *shopsdk.Client { return s.client }

// API returns the gateway session that always carries the current token.
func (s *SessionService) API() *shopsdk.Session { return s.api }

// Token implements shopsdk.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers fn for authentication flips.
func (s *SessionService) Subscribe(fn SessionObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current session.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *SessionService) snapshotLocked() domain.Session {
	snap := domain.Session{
		Token:           s.token,
		IsAuthenticated: s.token != "",
		State:           s.state,
	}
	if s.user != nil {
		u := *s.user
		u.Roles = slices.Clone(s.user.Roles)
		snap.User = &u
	}
	return snap
}

// Principal implements httpx.PrincipalSource for the BFF.
func (s *SessionService) Principal(_ context.Context) httpx.Principal {
	snap := s.Snapshot()
	p := httpx.Principal{Authenticated: snap.IsAuthenticated}
	if snap.User != nil {
		p.UserID = snap.User.ID
		p.Roles = snap.User.Roles
	}
	return p
}

// ============================================================================
// Transitions
// ============================================================================

// Login stores token, decodes it optimistically and then confirms it with
// the profile endpoint. A failed confirmation tears the session down and the
// error is returned.
func (s *SessionService) Login(ctx context.Context, token string) error {
	if err := s.store.Tokens().Set(ctx, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return s.authenticate(ctx, token)
}

// Restore loads a previously stored token at process start. No stored token
// is not an error.
func (s *SessionService) Restore(ctx context.Context) error {
	token, ok, err := s.store.Tokens().Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if !ok || token == "" {
		s.logger.DebugContext(ctx, "no stored session")
		return nil
	}
	return s.authenticate(ctx, token)
}

// Logout removes the token and the user. A storage failure is logged; the
// in-memory session is cleared regardless.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Tokens().Remove(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove stored token", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = domain.Unauthenticated
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "logged out")
	s.announce(ctx)
}

// Refresh refetches the profile of the current token. It is used after
// profile edits; a failure leaves the session as it was.
func (s *SessionService) Refresh(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return ErrLoginRequired
	}

	profile, err := s.client.NewSessionFromToken(token).GetProfile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.token == token {
		s.user = userFromProfile(profile)
		s.state = domain.Authenticated
	}
	s.mu.Unlock()
	return nil
}

func (s *SessionService) authenticate(ctx context.Context, token string) error {
	optimistic, err := userFromToken(token)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to decode token claims", "error", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = optimistic
	s.state = domain.Optimistic
	s.mu.Unlock()

	profile, err := s.client.NewSessionFromToken(token).GetProfile(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "profile fetch failed, clearing session", "error", err)
		s.teardown(ctx, token)
		s.announce(ctx)
		return fmt.Errorf("failed to load profile: %w", err)
	}

	s.mu.Lock()
	if s.token == token {
		s.user = userFromProfile(profile)
		s.state = domain.Authenticated
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session authenticated", "user_id", profile.ID)
	s.announce(ctx)
	return nil
}

// teardown clears the session if it still belongs to token. A newer login
// that raced ahead keeps its state.
func (s *SessionService) teardown(ctx context.Context, token string) {
	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = nil
	s.state = domain.Unauthenticated
	s.mu.Unlock()

	if err := s.store.Tokens().Remove(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove stored token", "error", err)
	}
}

// announce tells observers when the authenticated flag differs from what
// they last saw.
func (s *SessionService) announce(ctx context.Context) {
	s.mu.Lock()
	snap := s.snapshotLocked()
	if snap.IsAuthenticated == s.announced {
		s.mu.Unlock()
		return
	}
	s.announced = snap.IsAuthenticated
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(ctx, snap)
	}
}

// ============================================================================
// Credential helpers
// ============================================================================

// LoginWithPassword exchanges email and password for a token and logs in.
func (s *SessionService) LoginWithPassword(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, shopsdk.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.Login(ctx, token)
}

// Register creates an account and logs into it.
func (s *SessionService) Register(ctx context.Context, req shopsdk.RegisterRequest) error {
	token, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.Login(ctx, token)
}

// LoginWithGoogle exchanges a Google id token and logs in.
func (s *SessionService) LoginWithGoogle(ctx context.Context, idToken string) error {
	token, err := s.client.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return err
	}
	return s.Login(ctx, token)
}

// ============================================================================
// Projections
// ============================================================================

func userFromToken(token string) (*domain.User, error) {
	claims, err := jwtx.Decode(token)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:    claims.NameIdentifier,
		Email: claims.Email,
		Phone: claims.MobilePhone,
		Name:  claims.Name,
		Roles: slices.Clone([]string(claims.Roles)),
	}, nil
}

func userFromProfile(p *shopsdk.Profile) *domain.User {
	return &domain.User{
		ID:    p.ID,
		Email: p.Email,
		Phone: p.Phone,
		Name:  p.Username,
		Roles: slices.Clone(p.Roles),
	}
}

// requireLogin returns the gateway session, or ErrLoginRequired when no
// token is held.
func (s *SessionService) requireLogin() (*shopsdk.Session, error) {
	if s.Token() == "" {
		return nil, ErrLoginRequired
	}
	return s.api, nil
}
