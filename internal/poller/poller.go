// Package poller keeps the notification badge in sync with the backend by
// fetching the pending list on a fixed interval.
package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/logging"
	"github.com/colonyops/notifbadge/internal/core/notify"
)

// DefaultInterval is the time between two poll cycles.
const DefaultInterval = 10 * time.Second

// Options configures a Poller.
type Options struct {
	// BadgeID is the document id of the badge element. Defaults to
	// badge.SidebarID.
	BadgeID string
	// Interval between polls. Defaults to DefaultInterval.
	Interval time.Duration
	// Endpoint is only used to tag log events.
	Endpoint string
	Logger   zerolog.Logger
}

// Poller fetches the notification list and renders its count on the badge.
type Poller struct {
	source   notify.Source
	ref      badge.Ref
	interval time.Duration
	endpoint string
	log      zerolog.Logger
	seq      atomic.Uint64
}

// New looks up the badge element in doc and returns a poller bound to it.
// A missing element is not an error; the poller still fetches but renders
// nothing.
func New(source notify.Source, doc *badge.Document, opts Options) *Poller {
	if opts.BadgeID == "" {
		opts.BadgeID = badge.SidebarID
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	return &Poller{
		source:   source,
		ref:      doc.Lookup(opts.BadgeID),
		interval: opts.Interval,
		endpoint: opts.Endpoint,
		log:      logging.WithHooks(opts.Logger),
	}
}

// Interval returns the time between two polls.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// HasBadge reports whether the badge element was found at construction.
func (p *Poller) HasBadge() bool {
	return p.ref.Present()
}

// FetchAndRender runs one poll cycle. On success the badge is shown with the
// count, or hidden when the list is empty. On failure the badge is left
// untouched and the *notify.FetchError is returned to the caller.
func (p *Poller) FetchAndRender(ctx context.Context) error {
	list, err := p.source.Fetch(ctx)
	if err != nil {
		return err
	}

	badge.Apply(p.ref, badge.StateFor(list.Len()))
	return nil
}

// Poll runs one cycle and logs its outcome. It is what the schedule runs on
// every tick and what manual refreshes call.
func (p *Poller) Poll(ctx context.Context) {
	id := p.seq.Add(1)
	ctx = logging.WithPollID(ctx, id)
	if p.endpoint != "" {
		ctx = logging.WithEndpoint(ctx, p.endpoint)
	}

	start := time.Now()
	err := p.FetchAndRender(ctx)
	if err == nil {
		p.log.Debug().Ctx(ctx).Dur("took", time.Since(start)).Msg("poll cycle complete")
		return
	}

	// Cycles interrupted by Stop are not failures.
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		p.log.Debug().Ctx(ctx).Err(err).Msg("poll cycle cancelled")
		return
	}

	event := p.log.Error().Ctx(ctx).Err(err)
	var fe *notify.FetchError
	if errors.As(err, &fe) {
		event = event.Str("kind", string(fe.Kind))
		if fe.StatusCode != 0 {
			event = event.Int("status", fe.StatusCode)
		}
	}
	event.Msg("error loading notifications")
}

// Start polls once immediately and then on every interval until the returned
// handle is stopped or ctx is done. Each cycle runs in its own goroutine, so
// a slow response never delays the next tick; whichever response lands last
// decides what the badge shows.
func (p *Poller) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		p.run(ctx)
	}()

	return h
}

func (p *Poller) run(ctx context.Context) {
	var wg sync.WaitGroup
	defer wg.Wait()

	spawn := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Poll(ctx)
		}()
	}

	spawn()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			spawn()
		}
	}
}

// Handle owns a running schedule.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the schedule and any in-flight requests, then waits for
// running cycles to return. It is safe to call more than once.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed once the schedule has fully stopped.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
