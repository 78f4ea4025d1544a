package interfaces

import (
	"context"

	"veltech_portal/internal/domain/entities"
)

// INotificationEmitter abstracts the external notification transport (e.g.
// RabbitMQ). Emit is fire-and-forget: callers log a returned error and move
// on, it never fails the surrounding operation.

type INotificationEmitter interface {
	Emit(ctx context.Context, n entities.Notification) error
}
