// Package store holds the in-memory budget state and notifies subscribers
// whenever it changes.
package store

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/theirongolddev/breakeven/internal/model"
)

// Op identifies the kind of mutation that produced an Event.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpSet    Op = "set"
	OpLoad   Op = "load"
)

// Event is published after every committed mutation.
type Event struct {
	Version    uint64           `json:"version"`
	Collection model.Collection `json:"collection,omitempty"`
	Op         Op               `json:"op"`
	ID         string           `json:"id,omitempty"`
}

// Store is the single source of truth for everything the user has entered.
//
// Collections are copy-on-write: every mutation installs a new slice, so a
// slice handed out by an accessor never changes afterwards. Callers must not
// modify returned slices.
//
// Update and Remove act on the first record whose ID matches. An unknown ID
// is a silent no-op that neither bumps the version nor notifies anyone.
type Store struct {
	log *zap.Logger

	mu      sync.RWMutex
	budget  model.Budget
	version uint64

	subBuffer int
	nextSubID int
	subs      map[int]chan Event
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every mutation at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSubscriberBuffer sets the channel capacity handed to subscribers.
func WithSubscriberBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.subBuffer = n
		}
	}
}

// New returns an empty store with default assumptions.
func New(opts ...Option) *Store {
	s := &Store{
		log:       zap.NewNop(),
		budget:    normalize(model.Budget{}),
		subBuffer: 16,
		subs:      make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalize(b model.Budget) model.Budget {
	if b.Operating == nil {
		b.Operating = []model.OperatingCost{}
	}
	if b.Direct == nil {
		b.Direct = []model.DirectCost{}
	}
	if b.Collateral == nil {
		b.Collateral = []model.CollateralCost{}
	}
	if b.Services == nil {
		b.Services = []model.ProductionService{}
	}
	if b.Marketing == nil {
		b.Marketing = []model.MarketingCost{}
	}
	return b
}

// Version increases by one with every committed mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns the full current state.
func (s *Store) Snapshot() model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

func (s *Store) OperatingCosts() []model.OperatingCost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Operating
}

func (s *Store) DirectCosts() []model.DirectCost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Direct
}

func (s *Store) CollateralCosts() []model.CollateralCost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Collateral
}

func (s *Store) ProductionServices() []model.ProductionService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Services
}

func (s *Store) MarketingCosts() []model.MarketingCost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Marketing
}

func (s *Store) Assumptions() model.BusinessAssumptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Assumptions
}

// Load replaces the whole state at once, as when a worksheet is opened.
func (s *Store) Load(b model.Budget) {
	b.Operating = slices.Clone(b.Operating)
	b.Direct = slices.Clone(b.Direct)
	b.Collateral = slices.Clone(b.Collateral)
	b.Services = slices.Clone(b.Services)
	b.Marketing = slices.Clone(b.Marketing)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = normalize(b)
	s.commitLocked("", OpLoad, "")
}

// SetAssumptions merges p into the assumptions record.
func (s *Store) SetAssumptions(p model.AssumptionsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget.Assumptions = s.budget.Assumptions.Apply(p)
	s.commitLocked(model.CollectionAssumptions, OpSet, "")
}

// commitLocked bumps the version and fans the event out. Sends never block;
// a subscriber with a full buffer misses the event but can re-read state.
func (s *Store) commitLocked(c model.Collection, op Op, id string) {
	s.version++
	ev := Event{Version: s.version, Collection: c, Op: op, ID: id}

	s.log.Debug("store mutation",
		zap.String("collection", string(c)),
		zap.String("op", string(op)),
		zap.String("id", id),
		zap.Uint64("version", s.version),
	)

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe returns a channel of change events and a func that ends the
// subscription and closes the channel.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	ch := make(chan Event, s.subBuffer)
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
