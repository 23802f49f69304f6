package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ClickEventsModel = (*customClickEventsModel)(nil)

type (
	// ClickEventsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customClickEventsModel.
	ClickEventsModel interface {
		clickEventsModel
		withSession(session sqlx.Session) ClickEventsModel
		FindByShortCode(ctx context.Context, shortCode string) ([]*ClickEvents, error)
		CountByShortCode(ctx context.Context, shortCode string) (int64, error)
	}

	customClickEventsModel struct {
		*defaultClickEventsModel
	}
)

// NewClickEventsModel returns a model for the database table.
func NewClickEventsModel(conn sqlx.SqlConn) ClickEventsModel {
	return &customClickEventsModel{
		defaultClickEventsModel: newClickEventsModel(conn),
	}
}

func (m *customClickEventsModel) withSession(session sqlx.Session) ClickEventsModel {
	return NewClickEventsModel(sqlx.NewSqlConnFromSession(session))
}

// FindByShortCode returns every event stored for one short code. The result
// is a complete snapshot of the partition at query time; a short code with
// no events yields an empty slice, not an error.
func (m *customClickEventsModel) FindByShortCode(ctx context.Context, shortCode string) ([]*ClickEvents, error) {
	query := fmt.Sprintf("select %s from %s where short_code = $1", clickEventsRows, m.table)
	var resp []*ClickEvents
	err := m.conn.QueryRowsCtx(ctx, &resp, query, shortCode)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CountByShortCode returns the total number of events for a given short code.
func (m *customClickEventsModel) CountByShortCode(ctx context.Context, shortCode string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE short_code = $1", m.table)
	var count int64
	err := m.conn.QueryRowCtx(ctx, &count, query, shortCode)
	if err != nil {
		return 0, err
	}
	return count, nil
}
