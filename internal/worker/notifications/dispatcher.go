// Package notifications entrega avisos de adopción fuera del request.
//
// Enqueue nunca bloquea: si la cola está llena el aviso se descarta con un warn.
// No hay reintentos; un envío fallido solo se loguea.
package notifications

import (
	"context"
	"sync"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/notify"
)

const (
	DefaultQueueSize    = 64
	DefaultSendTimeout  = 10 * time.Second
	DefaultDrainTimeout = 5 * time.Second
)

type Options struct {
	QueueSize    int
	SendTimeout  time.Duration
	DrainTimeout time.Duration
	Logger       logger.Logger
}

type Dispatcher struct {
	notifier notify.Notifier
	queue    chan notify.Message
	log      logger.Logger

	sendTimeout  time.Duration
	drainTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher con notifier nil devuelve un dispatcher que descarta todo en silencio.
func NewDispatcher(notifier notify.Notifier, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = DefaultSendTimeout
	}
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = DefaultDrainTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Dispatcher{
		notifier:     notifier,
		queue:        make(chan notify.Message, opts.QueueSize),
		log:          opts.Logger.With(map[string]any{"component": "notifications"}),
		sendTimeout:  opts.SendTimeout,
		drainTimeout: opts.DrainTimeout,
	}
}

// Enqueue devuelve false si el mensaje no se encoló.
func (d *Dispatcher) Enqueue(msg notify.Message) bool {
	if d.notifier == nil {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn("notification dropped: dispatcher stopped", nil)
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.log.Warn("notification dropped: queue full", map[string]any{"queue_size": cap(d.queue)})
		return false
	}
}

// NotifyAdoption implementa pets.AdoptionNotifier.
func (d *Dispatcher) NotifyAdoption(_ context.Context, a pets.Adoption) {
	d.Enqueue(notify.Message{Text: a.Text()})
}

// Run consume la cola hasta que ctx se cancela; después drena lo pendiente
// con un límite de DrainTimeout. Siempre devuelve nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			d.stop()
			d.drain()
			return nil
		}
		select {
		case msg := <-d.queue:
			d.send(context.Background(), msg)
		case <-ctx.Done():
			d.stop()
			d.drain()
			return nil
		}
	}
}

func (d *Dispatcher) stop() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

func (d *Dispatcher) drain() {
	drainCtx, cancel := context.WithTimeout(context.Background(), d.drainTimeout)
	defer cancel()

	for {
		select {
		case msg := <-d.queue:
			d.send(drainCtx, msg)
		default:
			return
		}
		if drainCtx.Err() != nil {
			if n := len(d.queue); n > 0 {
				d.log.Warn("notifications lost on shutdown", map[string]any{"pending": n})
			}
			return
		}
	}
}

func (d *Dispatcher) send(parent context.Context, msg notify.Message) {
	ctx, cancel := context.WithTimeout(parent, d.sendTimeout)
	defer cancel()

	if err := d.notifier.Send(ctx, msg); err != nil {
		d.log.Warn("notification failed", map[string]any{"error": err})
		return
	}
	d.log.Debug("notification sent", nil)
}

var _ pets.AdoptionNotifier = (*Dispatcher)(nil)
