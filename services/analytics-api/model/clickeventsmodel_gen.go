// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package model

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/builder"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/core/stringx"
)

var (
	clickEventsFieldNames        = builder.RawFieldNames(&ClickEvents{}, true)
	clickEventsRows              = strings.Join(clickEventsFieldNames, ",")
	clickEventsRowsExpectAutoSet = strings.Join(stringx.Remove(clickEventsFieldNames, "created_at"), ",")
)

type (
	clickEventsModel interface {
		Insert(ctx context.Context, data *ClickEvents) (sql.Result, error)
		FindOne(ctx context.Context, shortCode, id string) (*ClickEvents, error)
	}

	defaultClickEventsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	ClickEvents struct {
		Id        string         `db:"id"`
		ShortCode string         `db:"short_code"` // partition key
		ClickedAt time.Time      `db:"clicked_at"` // producer-supplied click time
		UserAgent string         `db:"user_agent"`
		IpAddress sql.NullString `db:"ip_address"`
		Extra     string         `db:"extra"` // producer fields outside the schema, as jsonb
		CreatedAt time.Time      `db:"created_at"`
	}
)

func newClickEventsModel(conn sqlx.SqlConn) *defaultClickEventsModel {
	return &defaultClickEventsModel{
		conn:  conn,
		table: `"click_events"`,
	}
}

func (m *defaultClickEventsModel) Insert(ctx context.Context, data *ClickEvents) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (%s) values ($1, $2, $3, $4, $5, $6)", m.table, clickEventsRowsExpectAutoSet)
	return m.conn.ExecCtx(ctx, query, data.Id, data.ShortCode, data.ClickedAt, data.UserAgent, data.IpAddress, data.Extra)
}

func (m *defaultClickEventsModel) FindOne(ctx context.Context, shortCode, id string) (*ClickEvents, error) {
	query := fmt.Sprintf("select %s from %s where short_code = $1 and id = $2 limit 1", clickEventsRows, m.table)
	var resp ClickEvents
	err := m.conn.QueryRowCtx(ctx, &resp, query, shortCode, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
