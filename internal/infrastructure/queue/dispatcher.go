package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api/metrics"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrQueueFull is returned by Enqueue when the target worker's buffer is
// saturated. Callers surface it as a warning; nothing blocks.
var ErrQueueFull = errors.New("notification queue full")

// DedupChecker abstracts the once-only store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, templateID, recipient string) (bool, error)
	Mark(ctx context.Context, templateID, recipient string) error
}

// Dispatcher delivers notifications asynchronously after the registration
// transaction has committed. Notifications shard to a fixed set of workers
// by recipient, preserving per-recipient ordering; delivery failures are
// logged and counted, never propagated to the request path.
type Dispatcher struct {
	workers  []chan ports.Notification
	notifier ports.Notifier
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. dedup may be nil.
func NewDispatcher(numWorkers int, notifier ports.Notifier, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.Notification, numWorkers),
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its recipient
// without blocking. Returns ErrQueueFull when the buffer is saturated.
func (d *Dispatcher) Enqueue(n ports.Notification) error {
	idx := d.shardIndex(n.Recipient)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, n)
			metrics.NotificationQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n ports.Notification) {
	if d.dedup != nil {
		dup, err := d.dedup.IsDuplicate(ctx, n.TemplateID, n.Recipient)
		if err != nil {
			d.log.Warn().Err(err).Str("recipient", n.Recipient).Msg("dedup check failed, delivering anyway")
		} else if dup {
			metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
			return
		}
	}

	if err := d.notifier.Send(ctx, n); err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		d.log.Warn().Err(err).
			Str("template", n.TemplateID).
			Str("recipient", n.Recipient).
			Msg("notification delivery failed")
		return
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()

	if d.dedup != nil {
		if err := d.dedup.Mark(ctx, n.TemplateID, n.Recipient); err != nil {
			d.log.Warn().Err(err).Str("recipient", n.Recipient).Msg("failed to set dedup key")
		}
	}
}
