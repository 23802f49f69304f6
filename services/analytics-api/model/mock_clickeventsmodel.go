package model

import (
	"context"
	"database/sql"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// MockClickEventsModel is a test mock for ClickEventsModel interface.
type MockClickEventsModel struct {
	InsertFunc           func(ctx context.Context, data *ClickEvents) (sql.Result, error)
	FindOneFunc          func(ctx context.Context, shortCode, id string) (*ClickEvents, error)
	FindByShortCodeFunc  func(ctx context.Context, shortCode string) ([]*ClickEvents, error)
	CountByShortCodeFunc func(ctx context.Context, shortCode string) (int64, error)
	WithSessionFunc      func(session sqlx.Session) ClickEventsModel
}

// Ensure MockClickEventsModel implements ClickEventsModel interface
var _ ClickEventsModel = (*MockClickEventsModel)(nil)

func (m *MockClickEventsModel) Insert(ctx context.Context, data *ClickEvents) (sql.Result, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, data)
	}
	panic("MockClickEventsModel.InsertFunc not set")
}

func (m *MockClickEventsModel) FindOne(ctx context.Context, shortCode, id string) (*ClickEvents, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, shortCode, id)
	}
	panic("MockClickEventsModel.FindOneFunc not set")
}

func (m *MockClickEventsModel) FindByShortCode(ctx context.Context, shortCode string) ([]*ClickEvents, error) {
	if m.FindByShortCodeFunc != nil {
		return m.FindByShortCodeFunc(ctx, shortCode)
	}
	panic("MockClickEventsModel.FindByShortCodeFunc not set")
}

func (m *MockClickEventsModel) CountByShortCode(ctx context.Context, shortCode string) (int64, error) {
	if m.CountByShortCodeFunc != nil {
		return m.CountByShortCodeFunc(ctx, shortCode)
	}
	panic("MockClickEventsModel.CountByShortCodeFunc not set")
}

func (m *MockClickEventsModel) withSession(session sqlx.Session) ClickEventsModel {
	if m.WithSessionFunc != nil {
		return m.WithSessionFunc(session)
	}
	panic("MockClickEventsModel.WithSessionFunc not set")
}
