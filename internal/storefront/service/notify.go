package service

import (
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/idx"
)

// NoticeHistory is how many recent notices a Notifier keeps for Since.
const NoticeHistory = 64

// Notifier fans notices out to the shell. Subscribers run synchronously on
// the publishing goroutine and must not block.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[uint64]func(domain.Notice)
	next   uint64
	recent []domain.Notice

	// Now stamps published notices. Defaults to time.Now.
	Now func() time.Time
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifier) Subscribe(fn func(domain.Notice)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[uint64]func(domain.Notice))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Publish stamps and delivers a notice.
func (n *Notifier) Publish(notice domain.Notice) {
	if n == nil {
		return
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	if notice.At.IsZero() {
		notice.At = now()
	}
	if notice.ID == "" {
		notice.ID = idx.NewAt(notice.At).String()
	}

	n.mu.Lock()
	n.recent = append(n.recent, notice)
	if len(n.recent) > NoticeHistory {
		n.recent = slices.Delete(n.recent, 0, len(n.recent)-NoticeHistory)
	}
	subs := make([]func(domain.Notice), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(notice)
	}
}

// Since returns the kept notices published after the notice with id, oldest
// first. The zero id returns everything kept.
func (n *Notifier) Since(id idx.ID) []domain.Notice {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []domain.Notice
	for _, notice := range n.recent {
		if idx.ID(notice.ID).After(id) {
			out = append(out, notice)
		}
	}
	return out
}

// Info publishes an informational toast.
func (n *Notifier) Info(msg string) {
	n.Publish(domain.Notice{Level: domain.NoticeInfo, Message: msg})
}

// Success publishes a success toast.
func (n *Notifier) Success(msg string) {
	n.Publish(domain.Notice{Level: domain.NoticeSuccess, Message: msg})
}

// Warning publishes a warning toast.
func (n *Notifier) Warning(msg string) {
	n.Publish(domain.Notice{Level: domain.NoticeWarning, Message: msg})
}

// Error publishes an error toast.
func (n *Notifier) Error(msg string) {
	n.Publish(domain.Notice{Level: domain.NoticeError, Message: msg})
}
