package interfaces

import "context"

// INotificationSender delivers a message to one recipient. The core never
// depends on its success.
type INotificationSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
