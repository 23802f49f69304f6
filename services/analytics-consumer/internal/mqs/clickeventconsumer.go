package mqs

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"link-analytics/common/events"
	"link-analytics/services/analytics-api/model"
	"link-analytics/services/analytics-consumer/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type ClickEventConsumer struct {
	svcCtx        *svc.ServiceContext
	insertTimeout time.Duration
}

func NewClickEventConsumer(ctx context.Context, svcCtx *svc.ServiceContext) *ClickEventConsumer {
	timeout := time.Duration(svcCtx.Config.InsertTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ClickEventConsumer{
		svcCtx:        svcCtx,
		insertTimeout: timeout,
	}
}

// Consume handles one queued click event. Returning nil acknowledges the
// message; returning an error hands it back to the broker for redelivery.
// Permanent failures never return an error: they are parked on the
// dead-letter topic instead of looping through redelivery.
func (c *ClickEventConsumer) Consume(ctx context.Context, key, val string) error {
	event, err := events.Decode([]byte(val))
	if err != nil {
		return c.deadLetter(ctx, key, val, err)
	}

	if event.ID == "" {
		event.ID = events.NewEventID(event.ShortCode)
	}

	record, err := toRecord(event)
	if err != nil {
		return c.deadLetter(ctx, key, val, err)
	}

	// Bound the store round trip so a stalled insert frees the worker and
	// the broker redelivers.
	insertCtx, cancel := context.WithTimeout(ctx, c.insertTimeout)
	defer cancel()

	if _, err := c.svcCtx.ClickEventsModel.Insert(insertCtx, record); err != nil {
		if model.IsDuplicate(err) {
			// A previous delivery already committed this event; only its
			// acknowledgment was lost.
			logx.WithContext(ctx).Infow("duplicate click event, already stored",
				logx.Field("short_code", event.ShortCode),
				logx.Field("id", event.ID),
			)
			return nil
		}
		logx.WithContext(ctx).Errorf("failed to insert click event: %v", err)
		return err
	}

	logx.WithContext(ctx).Infow("click event stored",
		logx.Field("short_code", event.ShortCode),
		logx.Field("id", event.ID),
	)
	return nil
}

func toRecord(event *events.ClickEvent) (*model.ClickEvents, error) {
	extra := "{}"
	if len(event.Extra) > 0 {
		raw, err := json.Marshal(event.Extra)
		if err != nil {
			return nil, err
		}
		extra = string(raw)
	}

	return &model.ClickEvents{
		Id:        event.ID,
		ShortCode: event.ShortCode,
		ClickedAt: event.ClickedAt(),
		UserAgent: event.UserAgent,
		IpAddress: sql.NullString{String: event.IP, Valid: event.IP != ""},
		Extra:     extra,
	}, nil
}
