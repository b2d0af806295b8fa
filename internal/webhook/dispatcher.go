package webhook

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
)

// DefaultDelay lets Plex finish analyzing a new item before it is fetched.
const DefaultDelay = 10 * time.Second

// ItemSource fetches full item details.
type ItemSource interface {
	Item(ctx context.Context, ratingKey string) (*plex.Item, error)
}

// Pipeline runs the poster pipeline for one item.
type Pipeline interface {
	Process(ctx context.Context, item *plex.Item, force bool) processor.Outcome
}

// Invalidator drops cached library listings.
type Invalidator interface {
	InvalidateAll()
}

// Ensure the processor implements Pipeline.
var _ Pipeline = (*processor.Processor)(nil)

// Dispatcher runs webhook tasks in the background. Tasks still waiting for
// their delay are abandoned on Close; tasks past it run to completion.
type Dispatcher struct {
	items    ItemSource
	pipeline Pipeline
	cache    Invalidator
	delay    time.Duration
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDelay sets the wait before a task fetches its item.
func WithDelay(d time.Duration) Option {
	return func(disp *Dispatcher) {
		disp.delay = d
	}
}

// NewDispatcher creates a Dispatcher. cache may be nil.
func NewDispatcher(items ItemSource, pipeline Pipeline, cache Invalidator, log *slog.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		items:    items,
		pipeline: pipeline,
		cache:    cache,
		delay:    DefaultDelay,
		log:      log.With("component", "webhook"),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch schedules processing of the payload's item and returns the task
// id. It returns false when the dispatcher is closed.
func (d *Dispatcher) Dispatch(p *Payload) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return "", false
	}

	id := uuid.NewString()
	d.wg.Add(1)
	go d.run(id, p.Metadata)
	return id, true
}

func (d *Dispatcher) run(id string, m Metadata) {
	defer d.wg.Done()
	log := d.log.With("task_id", id, "key", m.RatingKey, "type", m.Type)
	log.Info("webhook task scheduled", "delay", d.delay)

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-d.ctx.Done():
		log.Info("webhook task abandoned")
		return
	}

	// Past the delay the task is no longer cancelled by Close.
	ctx := context.WithoutCancel(d.ctx)

	item, err := d.items.Item(ctx, m.RatingKey)
	if err != nil {
		log.Error("webhook item fetch failed", "error", err)
		return
	}
	if item.Type == "" {
		item.Type = m.Type
	}

	outcome := d.pipeline.Process(ctx, item, false)
	if !outcome.OK() {
		log.Warn("webhook task finished without poster", "title", item.Title, "outcome", outcome.String())
		return
	}

	if d.cache != nil {
		d.cache.InvalidateAll()
	}
	log.Info("webhook task done", "title", item.Title)
}

// Close stops accepting tasks, abandons delayed ones and waits for running
// ones until ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
