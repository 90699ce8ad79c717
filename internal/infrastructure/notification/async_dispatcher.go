package notification

import (
	"context"
	"fmt"
	"time"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// AsyncDispatcher hands summaries to next on a bounded worker pool so that a
// slow channel never holds up a submission. A full pool rejects the summary
// instead of queueing it.
type AsyncDispatcher struct {
	next    interfaces.INotificationDispatcher
	pool    *ants.Pool
	timeout time.Duration
}

var _ interfaces.INotificationDispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(next interfaces.INotificationDispatcher, workers int, timeout time.Duration) (*AsyncDispatcher, error) {
	pool, err := ants.NewPool(workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p interface{}) {
			zap.L().Error("[notification][async] dispatcher panicked", zap.Any("panic", p))
		}),
	)
	if err != nil {
		return nil, err
	}
	return &AsyncDispatcher{next: next, pool: pool, timeout: timeout}, nil
}

// Dispatch returns once the summary is queued; delivery errors are logged by
// the worker.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, summary entities.ConfigurationSummary) error {
	base := context.WithoutCancel(ctx)
	err := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(base, d.timeout)
		defer cancel()
		if err := d.next.Dispatch(ctx, summary); err != nil {
			zap.L().Warn("[notification][async] delivery failed",
				zap.String("product_line", string(summary.ProductLine)),
				zap.String("configuration_id", summary.Reference),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("queue notification %s: %w", summary.Reference, err)
	}
	return nil
}

// Close waits up to timeout for queued deliveries, then stops the pool.
func (d *AsyncDispatcher) Close(timeout time.Duration) error {
	return d.pool.ReleaseTimeout(timeout)
}
