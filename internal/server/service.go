// Package server exposes a budget store over HTTP with a live change stream.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/store"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	EventsBuffer int
	CORSOrigins  []string
	Worksheet    string // name shown in status, informational only
}

// Event is emitted after every store mutation.
type Event struct {
	ID         int64            `json:"id"`
	Type       string           `json:"type"`
	Timestamp  time.Time        `json:"timestamp"`
	Change     store.Event      `json:"change"`
	Projection model.Projection `json:"projection"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Worksheet       string    `json:"worksheet,omitempty"`
	Version         uint64    `json:"version"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the HTTP API over a store.
type Service struct {
	cfg     Config
	store   *store.Store
	log     *zap.Logger
	metrics *metrics
	newID   func() string
	engine  *gin.Engine

	mu          sync.RWMutex
	startedAt   time.Time
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service over st. A nil logger discards output.
func New(cfg Config, st *store.Store, log *zap.Logger) *Service {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		cfg:       cfg,
		store:     st,
		log:       log,
		metrics:   newMetrics(),
		newID:     uuid.NewString,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
	s.metrics.version.Set(float64(st.Version()))
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Service) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP and relays store changes to stream subscribers until ctx
// is canceled.
func (s *Service) Run(ctx context.Context) error {
	changes, unsubscribe := s.store.Subscribe()
	defer unsubscribe()

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		// Streams end when ctx does, so Shutdown is not held open by them.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("server listening", zap.String("addr", s.cfg.Addr))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case ev, ok := <-changes:
			if !ok {
				return nil
			}
			s.handleChange(ev)
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		}
	}
}

// handleChange records a store mutation and fans it out to stream clients.
func (s *Service) handleChange(change store.Event) {
	p := pipeline.AggregateBudget(s.store.Snapshot())

	s.metrics.observeChange(change, p)

	s.mu.Lock()
	s.nextEventID++
	ev := Event{
		ID:         s.nextEventID,
		Type:       "change",
		Timestamp:  time.Now(),
		Change:     change,
		Projection: p,
	}
	s.mu.Unlock()

	s.publishEvent(ev)
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Worksheet:       s.cfg.Worksheet,
		Version:         s.store.Version(),
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) recentEvents() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
