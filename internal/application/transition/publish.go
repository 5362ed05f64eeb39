package transition

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
	"go.uber.org/zap"
)

// Flush publishes the pending domain events of aggregates after their transaction
// committed, then clears them. A failing subscriber never undoes the committed state,
// so publish errors are logged and not returned.
func Flush(ctx context.Context, publisher shared.EventPublisher, log *zap.Logger, aggregates ...shared.AggregateRoot) {
	var events []shared.DomainEvent
	for _, agg := range aggregates {
		events = append(events, agg.GetDomainEvents()...)
		agg.ClearDomainEvents()
	}
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		log.Error("failed to publish domain events after commit",
			zap.Int("event_count", len(events)),
			zap.Error(err),
		)
	}
}
