package usecase

import (
	"context"

	"certifica_condo/internal/infrastructure/observability"
	"certifica_condo/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Message is one notification to deliver.
type Message struct {
	Kind      string
	Recipient string
	Subject   string
	Body      string
}

// Notifier fans messages out to the sender with bounded concurrency.
// Delivery failures are logged and counted, never returned: state changes
// that triggered them are already committed.
type Notifier struct {
	sender      interfaces.INotificationSender
	logger      *zap.Logger
	metrics     *observability.Metrics
	concurrency int
}

func NewNotifier(sender interfaces.INotificationSender, logger *zap.Logger, metrics *observability.Metrics, concurrency int) *Notifier {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Notifier{sender: sender, logger: orNop(logger), metrics: metrics, concurrency: concurrency}
}

// Dispatch blocks until every message was attempted.
func (n *Notifier) Dispatch(ctx context.Context, msgs []Message) {
	if n == nil || n.sender == nil || len(msgs) == 0 {
		return
	}
	// Detached from request cancellation: the transition already committed.
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(n.concurrency)
	for _, m := range msgs {
		m := m
		g.Go(func() error {
			if err := n.sender.Send(ctx, m.Recipient, m.Subject, m.Body); err != nil {
				n.metrics.RecordNotification(m.Kind, "error")
				n.logger.Warn("[notification][usecase] send failed",
					zap.String("kind", m.Kind),
					zap.String("recipient", m.Recipient),
					zap.Error(err))
				return nil
			}
			n.metrics.RecordNotification(m.Kind, "ok")
			return nil
		})
	}
	_ = g.Wait()
}
