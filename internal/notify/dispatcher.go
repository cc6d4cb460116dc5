package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Princeaman007/interships/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const sendTimeout = 30 * time.Second

type job struct {
	ctx context.Context
	ev  Event
}

// Dispatcher is the in-process notification worker pool. Events are queued
// by Notify and delivered by a fixed number of goroutines.
type Dispatcher struct {
	sender   Sender
	renderer *Renderer
	queue    chan job
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sender Sender, renderer *Renderer, queueSize, workers int) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		sender:   sender,
		renderer: renderer,
		queue:    make(chan job, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// Notify enqueues ev. A full queue or a closed dispatcher drops the event.
func (d *Dispatcher) Notify(ctx context.Context, ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.Warn("notification dropped, dispatcher closed", "kind", ev.Kind)
		metrics.Notifications.WithLabelValues(string(ev.Kind), "dropped").Inc()
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), ev: ev}:
	default:
		slog.Warn("notification dropped, queue full", "kind", ev.Kind)
		metrics.Notifications.WithLabelValues(string(ev.Kind), "dropped").Inc()
	}
}

// Close stops accepting events and waits for queued ones to be delivered.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

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

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.queue {
		d.deliver(j.ctx, j.ev)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev Event) {
	ctx, span := otel.Tracer("notify").Start(ctx, "notify.deliver")
	span.SetAttributes(attribute.String("notify.kind", string(ev.Kind)))
	defer span.End()

	msg, err := d.renderer.Render(ev)
	if err != nil {
		span.RecordError(err)
		slog.Error("notification render failed", "kind", ev.Kind, "error", err.Error())
		metrics.Notifications.WithLabelValues(string(ev.Kind), "failed").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := d.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		slog.Error("notification send failed", "kind", ev.Kind, "to", ev.To, "error", err.Error())
		metrics.Notifications.WithLabelValues(string(ev.Kind), "failed").Inc()
		return
	}
	metrics.Notifications.WithLabelValues(string(ev.Kind), "sent").Inc()
}
