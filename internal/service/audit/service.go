package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/google/uuid"
)

// Config holds audit recorder configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

// Recorder persists audit events in the background. Record never blocks and
// never fails the caller.
type Recorder struct {
	repo   audit.Repository
	sinks  []audit.Sink
	config Config
	logger *slog.Logger

	queue     chan audit.Event
	wg        sync.WaitGroup
	stopCh    chan struct{}
	stopped   atomic.Bool
	closeOnce sync.Once
}

var _ audit.Recorder = (*Recorder)(nil)

// NewRecorder creates a recorder with background workers
func NewRecorder(repo audit.Repository, cfg Config, sinks ...audit.Sink) *Recorder {
	// Set defaults
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	r := &Recorder{
		repo:   repo,
		sinks:  sinks,
		config: cfg,
		logger: slog.Default().With("component", "audit"),
		queue:  make(chan audit.Event, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}

	r.logger.Info("audit recorder started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval,
	)

	return r
}

// Record implements audit.Recorder.
func (r *Recorder) Record(_ context.Context, event audit.Event) {
	if r.stopped.Load() {
		r.logger.Warn("audit recorder closed, dropping event", "action", event.Action, "request_id", event.RequestID)
		return
	}
	if event.ID == "" {
		if id, err := uuid.NewV7(); err == nil {
			event.ID = id.String()
		} else {
			event.ID = uuid.NewString()
		}
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	select {
	case r.queue <- event:
	default:
		r.logger.Warn("audit queue full, dropping event", "action", event.Action, "request_id", event.RequestID)
	}
}

// Close stops the workers after flushing queued events.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.stopped.Store(true)
		close(r.stopCh)
		r.wg.Wait()
		r.logger.Info("audit recorder stopped")
	})
}

// worker is the background worker that drains the audit queue
func (r *Recorder) worker(id int) {
	defer r.wg.Done()

	batch := make([]audit.Event, 0, r.config.BatchSize)
	ticker := time.NewTicker(r.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		r.flush(id, batch)
		batch = batch[:0]
	}

	for {
		select {
		case event := <-r.queue:
			batch = append(batch, event)
			if len(batch) >= r.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-r.stopCh:
			for {
				select {
				case event := <-r.queue:
					batch = append(batch, event)
					if len(batch) >= r.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (r *Recorder) flush(workerID int, batch []audit.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events := make([]audit.Event, len(batch))
	copy(events, batch)

	if err := r.repo.CreateBatch(ctx, events); err != nil {
		r.logger.Error("failed to persist audit events", "worker", workerID, "count", len(events), "error", err)
		return
	}
	r.logger.Debug("persisted audit events", "worker", workerID, "count", len(events))

	for _, sink := range r.sinks {
		if err := sink.Deliver(ctx, events); err != nil {
			r.logger.Warn("audit sink delivery failed", "worker", workerID, "error", err)
		}
	}
}
