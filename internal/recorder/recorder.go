package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
	"github.com/OssiLV/uit-ecommerce/internal/port"
)

// Sink persists interaction events. Errors are contained inside the
// recorder, sinks never see retries.
type Sink interface {
	Save(ctx context.Context, interaction domain.Interaction) error
}

const saveTimeout = 5 * time.Second

// Recorder is the fire-and-forget interaction pipeline: Record pushes
// onto a bounded channel and returns immediately, a single worker
// drains it into the sink. A full buffer or a closed recorder drops
// the event, a failing sink logs and drops. None of it ever reaches
// the calling workflow.
type Recorder struct {
	events chan domain.Interaction
	sink   Sink
	logger *zap.Logger

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

var _ port.InteractionRecorder = (*Recorder)(nil)

func New(sink Sink, bufferSize int, logger *zap.Logger) *Recorder {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Recorder{
		events: make(chan domain.Interaction, bufferSize),
		sink:   sink,
		logger: logger,
		done:   make(chan struct{}),
	}

	go r.drain()

	return r
}

func (r *Recorder) Record(userID string, productID uuid.UUID, eventType domain.InteractionType) {
	interaction := domain.Interaction{
		UserID:    userID,
		ProductID: productID,
		Type:      eventType,
		Rating:    eventType.Score(),
		Timestamp: time.Now().UTC(),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn("recorder closed, dropping event",
			zap.String("user_id", userID),
			zap.String("product_id", productID.String()),
			zap.String("type", string(eventType)))
		return
	}

	select {
	case r.events <- interaction:
	default:
		r.logger.Warn("interaction buffer full, dropping event",
			zap.String("user_id", userID),
			zap.String("product_id", productID.String()),
			zap.String("type", string(eventType)))
	}
}

// Close stops accepting events, flushes what is buffered and waits for
// the worker to exit.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()

		close(r.events)
	})

	<-r.done
}

func (r *Recorder) drain() {
	defer close(r.done)

	for interaction := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)

		if err := r.sink.Save(ctx, interaction); err != nil {
			r.logger.Warn("failed to save interaction",
				zap.String("user_id", interaction.UserID),
				zap.String("type", string(interaction.Type)),
				zap.Error(err))
		}

		cancel()
	}
}
