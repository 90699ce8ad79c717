package interfaces

import (
	"context"

	"carport_configurator/internal/domain/entities"
)

// INotificationDispatcher hands a persisted configuration to whatever delivers
// the confirmation. Delivery failures never affect the stored record.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, summary entities.ConfigurationSummary) error
}
