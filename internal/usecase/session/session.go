package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotReady          = errs.New("occupancy map is not ready")
	ErrRebuildSuperseded = errs.New("rebuild superseded by a newer one")
	ErrFetchFailed       = errs.New("failed to fetch occupancy records")
	ErrOutsideHorizon    = errs.New("date is outside the booking horizon")
	ErrTableBooked       = errs.New("table is already booked at the requested hour")
)

type Options struct {
	FetchTimeout time.Duration
}

// View is a read-only look at the current map. It must not be retained
// after the callback passed to Read returns.
type View struct {
	Map        *occupancy.Map
	Horizon    timegrid.Horizon
	Venue      *venue.Venue
	Generation uint64
	BuiltAt    time.Time
}

// Ticket identifies a locally folded reservation until the store has
// acknowledged or refused it.
type Ticket uint64

type pendingFold struct {
	desc         *reservation.Descriptor
	settled      bool
	settledEpoch uint64
}

// Session owns the occupancy map for one venue. Queries and validations see
// the last completed map; rebuilds replace it wholesale.
type Session struct {
	bc           shared.BookingContext
	hub          *Hub
	logger       *slog.Logger
	fetchTimeout time.Duration

	mu         sync.RWMutex
	current    *occupancy.Map
	horizon    timegrid.Horizon
	generation uint64
	builtAt    time.Time
	epoch      uint64
	nextTicket Ticket
	pending    map[Ticket]*pendingFold

	// genMu orders rebuilds; always taken before mu.
	genMu  sync.Mutex
	latest uint64
	cancel context.CancelFunc

	wg sync.WaitGroup
}

func New(bc shared.BookingContext, hub *Hub, logger *slog.Logger, opts Options) *Session {
	if hub == nil {
		hub = NewHub(1)
	}
	return &Session{
		bc:           bc,
		hub:          hub,
		logger:       logger,
		fetchTimeout: opts.FetchTimeout,
		pending:      make(map[Ticket]*pendingFold),
	}
}

// Rebuild fetches all records for the current horizon and replaces the map.
// Starting a rebuild cancels the one in flight; a rebuild that is no longer
// the newest when it finishes is discarded with ErrRebuildSuperseded. On
// fetch failure the previous map stays in place.
func (s *Session) Rebuild(ctx context.Context) (View, error) {
	gen, rctx, done := s.begin(ctx)
	defer done()

	h, err := s.bc.Horizon()
	if err != nil {
		return View{}, errs.Wrap(err, "compute horizon")
	}

	s.mu.Lock()
	s.epoch++
	startEpoch := s.epoch
	s.mu.Unlock()

	m, err := s.fetch(rctx, h)
	if err != nil {
		if s.superseded(gen) {
			return View{}, errs.Mark(err, ErrRebuildSuperseded)
		}
		s.logger.Warn("occupancy rebuild failed, keeping previous map",
			slog.Uint64("generation", gen),
			slog.String("horizon", h.String()),
			slog.String("error", err.Error()))
		return View{}, errs.Mark(errs.Wrap(err, "rebuild occupancy"), ErrFetchFailed)
	}

	return s.install(gen, startEpoch, m, h)
}

// RebuildInBackground starts a rebuild detached from any request.
func (s *Session) RebuildInBackground(reason string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.Rebuild(context.Background()); err != nil && !errs.Is(err, ErrRebuildSuperseded) {
			s.logger.Warn("background rebuild failed", slog.String("reason", reason), slog.String("error", err.Error()))
		}
	}()
}

// Close cancels the rebuild in flight and waits for background rebuilds.
func (s *Session) Close() {
	s.genMu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.genMu.Unlock()
	s.wg.Wait()
}

func (s *Session) begin(ctx context.Context) (uint64, context.Context, func()) {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	gen := s.latest
	rctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	return gen, rctx, func() {
		cancel()
		s.genMu.Lock()
		if s.latest == gen {
			s.cancel = nil
		}
		s.genMu.Unlock()
	}
}

func (s *Session) superseded(gen uint64) bool {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return gen != s.latest
}

func (s *Session) fetch(ctx context.Context, h timegrid.Horizon) (*occupancy.Map, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	var (
		bookings  []occupancy.BookingRecord
		current   []occupancy.EventRecord
		repeating []occupancy.EventRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.bc.Source.Bookings(gctx, h)
		return errs.Wrap(err, "fetch bookings")
	})
	g.Go(func() error {
		var err error
		current, err = s.bc.Source.CurrentEvents(gctx, h)
		return errs.Wrap(err, "fetch current events")
	})
	g.Go(func() error {
		var err error
		repeating, err = s.bc.Source.RepeatingEvents(gctx, h)
		return errs.Wrap(err, "fetch repeating events")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return occupancy.Build(bookings, current, repeating, h), nil
}

func (s *Session) install(gen, startEpoch uint64, m *occupancy.Map, h timegrid.Horizon) (View, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if gen != s.latest {
		return View{}, ErrRebuildSuperseded
	}

	s.mu.Lock()
	reapplied := 0
	for t, p := range s.pending {
		// settled before this fetch started, so the store already returned it
		if p.settled && p.settledEpoch < startEpoch {
			delete(s.pending, t)
			continue
		}
		if !h.Contains(p.desc.Date) {
			if p.settled {
				delete(s.pending, t)
			}
			continue
		}
		p.desc.MarkInto(m)
		reapplied++
	}
	s.current = m
	s.horizon = h
	s.generation = gen
	s.builtAt = s.bc.Clock.Now()
	view := s.viewLocked()
	s.mu.Unlock()

	s.logger.Info("occupancy map rebuilt",
		slog.Uint64("generation", gen),
		slog.String("horizon", h.String()),
		slog.Int("dates", len(m.Dates())),
		slog.Int("reapplied", reapplied))
	s.hub.Publish(Event{Type: EventRebuilt, Generation: gen})
	return view, nil
}

// Read runs fn against the current map under the read lock.
func (s *Session) Read(fn func(View) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ErrNotReady
	}
	return fn(s.viewLocked())
}

func (s *Session) viewLocked() View {
	return View{
		Map:        s.current,
		Horizon:    s.horizon,
		Venue:      s.bc.Venue,
		Generation: s.generation,
		BuiltAt:    s.builtAt,
	}
}

// Reserve validates req and, when accepted, folds it into the map in the
// same critical section. A rejection is reported through the outcome, not
// the error.
func (s *Session) Reserve(req reservation.Request) (reservation.Outcome, Ticket, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return reservation.Outcome{}, 0, ErrNotReady
	}
	if !s.horizon.Contains(req.Date) {
		h := s.horizon
		s.mu.Unlock()
		return reservation.Outcome{}, 0, errs.Mark(errs.Newf("%s is not within %s", req.Date, h), ErrOutsideHorizon)
	}
	if !occupancy.IsFree(s.current, req.Date, req.Start, req.Table) {
		s.mu.Unlock()
		return reservation.Outcome{}, 0, errs.Mark(errs.Newf("table %s at %s %s", req.Table, req.Date, req.Start), ErrTableBooked)
	}

	out := reservation.Decide(s.current, req, s.bc.Closing(), uuid.New(), s.bc.Clock.Now())
	if !out.Accepted() {
		s.mu.Unlock()
		return out, 0, nil
	}

	out.Descriptor.MarkInto(s.current)
	s.nextTicket++
	ticket := s.nextTicket
	s.pending[ticket] = &pendingFold{desc: out.Descriptor}
	gen := s.generation
	s.mu.Unlock()

	s.hub.Publish(Event{Type: EventReserved, Generation: gen, Date: req.Date})
	return out, ticket, nil
}

// Settle records that the store acknowledged the reservation behind t.
func (s *Session) Settle(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[t]; ok {
		p.settled = true
		p.settledEpoch = s.epoch
	}
}

// Discard forgets a reservation the store refused. Its fold stays in the
// current map until the next rebuild.
func (s *Session) Discard(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, t)
}

func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *Session) Horizon() timegrid.Horizon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.horizon
}

func (s *Session) Venue() *venue.Venue {
	return s.bc.Venue
}

func (s *Session) Subscribe() (<-chan Event, func()) {
	return s.hub.Subscribe()
}

func (s *Session) pendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
