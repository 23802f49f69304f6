package mqs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// deadLetterEnvelope wraps an unprocessable message with enough context to
// diagnose it later: the raw body, the broker key, and the failure reason.
type deadLetterEnvelope struct {
	Id         string `json:"id"`
	Key        string `json:"key,omitempty"`
	Body       string `json:"body"`
	Reason     string `json:"reason"`
	OccurredAt int64  `json:"occurred_at"`
}

// deadLetter parks a permanently failed message on the dead-letter topic and
// acknowledges it (nil return). If the park itself fails, the error is
// returned so the broker redelivers; losing the message is never an option.
func (c *ClickEventConsumer) deadLetter(ctx context.Context, key, val string, cause error) error {
	envelope := deadLetterEnvelope{
		Id:         uuid.NewString(),
		Key:        key,
		Body:       val,
		Reason:     cause.Error(),
		OccurredAt: time.Now().Unix(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	if err := c.svcCtx.DeadLetter.Push(ctx, string(payload)); err != nil {
		logx.WithContext(ctx).Errorf("failed to dead-letter message: %v", err)
		return err
	}

	logx.WithContext(ctx).Errorw("click event dead-lettered",
		logx.Field("dead_letter_id", envelope.Id),
		logx.Field("reason", cause.Error()),
	)
	return nil
}
