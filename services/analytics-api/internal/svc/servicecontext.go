// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"time"

	"link-analytics/services/analytics-api/internal/cache"
	"link-analytics/services/analytics-api/internal/config"
	"link-analytics/services/analytics-api/model"

	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	_ "github.com/lib/pq"
)

type ServiceContext struct {
	Config           config.Config
	ClickEventsModel model.ClickEventsModel
	SummaryCache     cache.SummaryCache
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.NewSqlConn("postgres", c.DataSource)

	db, err := conn.RawDB()
	logx.Must(err)
	db.SetMaxOpenConns(c.Pool.MaxOpenConns)
	db.SetMaxIdleConns(c.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.Pool.ConnMaxLifetime) * time.Second)

	var rdb *redis.Client
	if c.Cache.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: c.Cache.Addr})
		logx.Infof("Summary cache enabled: %s, ttl=%ds", c.Cache.Addr, c.Cache.TTLSeconds)
	}

	return &ServiceContext{
		Config:           c,
		ClickEventsModel: model.NewClickEventsModel(conn),
		SummaryCache:     cache.New(rdb, time.Duration(c.Cache.TTLSeconds)*time.Second),
	}
}
