package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/idx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// DefaultHeartbeat is the idle interval after which the event stream sends
// a comment line to keep proxies from closing it.
const DefaultHeartbeat = 25 * time.Second

// eventBuffer bounds undelivered events per stream. A stream that falls this
// far behind loses events rather than stalling the publisher.
const eventBuffer = 32

// Event stream names.
const (
	EventNotice       = "notice"
	EventUnauthorized = "unauthorized"
)

type streamEvent struct {
	name string
	id   string
	data []byte
}

// EventsHandler streams notices and the unauthorized signal as server-sent
// events. The unauthorized event carries no payload. A reconnecting client
// sending Last-Event-ID first receives the kept notices it missed.
type EventsHandler struct {
	Notices   *service.Notifier
	Signal    *service.UnauthorizedSignal
	Heartbeat time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Event stream
//	@Description	Server-sent events: "notice" with a JSON notice, "unauthorized" with an empty payload.
//	@Tags			Events
//	@Produce		text/event-stream
//	@Param			Last-Event-ID	header	string	false	"Resume after this notice id"
//	@Success		200
//	@Router			/v1/events [get].
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	rc := http.NewResponseController(w)

	events := make(chan streamEvent, eventBuffer)
	push := func(ev streamEvent) {
		select {
		case events <- ev:
		default:
			log.Warn("event stream full, dropping event", "event", ev.name)
		}
	}

	if h.Notices != nil {
		off := h.Notices.Subscribe(func(n domain.Notice) {
			data, err := json.Marshal(n)
			if err != nil {
				return
			}
			push(streamEvent{name: EventNotice, id: n.ID, data: data})
		})
		defer off()
	}
	if h.Signal != nil {
		off := h.Signal.Subscribe(func() {
			push(streamEvent{name: EventUnauthorized, data: []byte("{}")})
		})
		defer off()
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		log.Error("event stream not supported", "error", err)
		return
	}

	// Notices at or before the cursor were already sent.
	var cursor idx.ID
	if last, err := idx.Parse(r.Header.Get("Last-Event-ID")); err == nil && h.Notices != nil {
		cursor = last
		for _, n := range h.Notices.Since(last) {
			data, err := json.Marshal(n)
			if err != nil {
				continue
			}
			if err := writeEvent(w, streamEvent{name: EventNotice, id: n.ID, data: data}); err != nil {
				return
			}
			cursor = idx.ID(n.ID)
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case ev := <-events:
			if ev.id != "" && !cursor.IsZero() && !idx.ID(ev.id).After(cursor) {
				continue
			}
			if err := writeEvent(w, ev); err != nil {
				log.Debug("event stream closed", "error", err)
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, ev streamEvent) error {
	if ev.id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", ev.id); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, ev.data)
	return err
}
