// Package notification delivers user-facing messages. LogSender writes them
// to the structured log; a mail transport can replace it behind the same
// interface.
package notification

import (
	"context"
	"errors"
	"strings"

	"certifica_condo/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrEmptyRecipient = errors.New("notification recipient is empty")

type LogSender struct {
	logger *zap.Logger
	from   string
}

var _ interfaces.INotificationSender = (*LogSender)(nil)

func NewLogSender(logger *zap.Logger, from string) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger, from: from}
}

func (s *LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(recipient) == "" {
		return ErrEmptyRecipient
	}
	s.logger.Info("[notification][sender] message sent",
		zap.String("from", s.from),
		zap.String("to", recipient),
		zap.String("subject", subject),
		zap.Int("body_len", len(body)),
	)
	return nil
}
