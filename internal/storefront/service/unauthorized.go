package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// UnauthorizedSignal is the registry the gateway raises when a request was
// rejected because the local token expired. It carries no payload.
type UnauthorizedSignal struct {
	mu   sync.RWMutex
	subs map[uint64]func()
	next uint64
}

var _ shopsdk.UnauthorizedNotifier = (*UnauthorizedSignal)(nil)

// Subscribe registers fn and returns a function that removes it.
func (s *UnauthorizedSignal) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[uint64]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// NotifyUnauthorized calls every subscriber once.
func (s *UnauthorizedSignal) NotifyUnauthorized() {
	s.mu.RLock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

// ExpiryHandler is the shell's reaction to the unauthorized signal: show a
// blocking "session expired" notice, log out and send the user to the
// login route. It fires once, then stays quiet until the next login so a
// burst of rejected requests produces a single dialog.
type ExpiryHandler struct {
	Session *SessionService
	Notices *Notifier
	Logger  *slog.Logger

	fired atomic.Bool
}

// Attach subscribes the handler to signal and re-arms it on every login.
func (h *ExpiryHandler) Attach(signal *UnauthorizedSignal) (detach func()) {
	off := signal.Subscribe(h.HandleUnauthorized)
	h.Session.Subscribe(func(_ context.Context, snap domain.Session) {
		if snap.IsAuthenticated {
			h.fired.Store(false)
		}
	})
	return off
}

// HandleUnauthorized runs the expiry flow unless it already ran for this
// session.
func (h *ExpiryHandler) HandleUnauthorized() {
	if !h.fired.CompareAndSwap(false, true) {
		return
	}

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("session expired, logging out")

	h.Notices.Publish(domain.Notice{
		Level:    domain.NoticeWarning,
		Message:  MsgSessionExpired,
		Blocking: true,
		Navigate: LoginRoute,
	})

	h.Session.Logout(context.Background())
}

// Fired reports whether the handler has run since the last login.
func (h *ExpiryHandler) Fired() bool {
	return h.fired.Load()
}
