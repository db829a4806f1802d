// Package notification fans a validated message out to the configured
// notifier implementations. The enabled set is an explicit list built
// at startup, there is no implicit registry.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/campuschat/server/core"
)

var tracer = otel.Tracer("notification")

// Notifier delivers a single message event over one transport.
type Notifier interface {
	Notify(ctx context.Context, message core.Message) error
}

type service struct {
	notifiers []Notifier
}

// NewService creates a dispatcher over the given notifiers.
func NewService(notifiers ...Notifier) core.NotificationService {
	return &service{notifiers}
}

// Dispatch hands the message to every notifier. A failing notifier is
// logged and does not keep the others from running.
func (s *service) Dispatch(ctx context.Context, message core.Message) {
	ctx, span := tracer.Start(ctx, "Notification.Service.Dispatch")
	defer span.End()

	for _, notifier := range s.notifiers {
		err := notifier.Notify(ctx, message)
		if err != nil {
			span.RecordError(err)
			slog.ErrorContext(ctx, fmt.Sprintf("notifier failed: %v", err), slog.String("module", "notification"))
		}
	}
}
