package svc

import (
	"context"
	"time"

	"link-analytics/database"
	"link-analytics/services/analytics-api/model"
	"link-analytics/services/analytics-consumer/internal/config"

	"github.com/zeromicro/go-queue/kq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	_ "github.com/lib/pq"
)

// Pusher is the producer side of the dead-letter topic. kq.Pusher satisfies
// it; tests substitute their own.
type Pusher interface {
	Push(ctx context.Context, v string) error
}

type ServiceContext struct {
	Config           config.Config
	ClickEventsModel model.ClickEventsModel
	DeadLetter       Pusher
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewSqlConn("postgres", c.DataSource)

	// Configure connection pool
	db, err := conn.RawDB()
	logx.Must(err)
	db.SetMaxOpenConns(c.Pool.MaxOpenConns)
	db.SetMaxIdleConns(c.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.Pool.ConnMaxLifetime) * time.Second)
	logx.Infof("Connection pool configured: MaxOpen=%d, MaxIdle=%d, MaxLifetime=%ds",
		c.Pool.MaxOpenConns, c.Pool.MaxIdleConns, c.Pool.ConnMaxLifetime)

	// The consumer owns the schema: bring the partitioned click_events table
	// up to date before taking any messages.
	logx.Must(database.RunMigrations(db))

	return &ServiceContext{
		Config:           c,
		ClickEventsModel: model.NewClickEventsModel(conn),
		DeadLetter:       kq.NewPusher(c.DeadLetter.Brokers, c.DeadLetter.Topic),
	}
}
