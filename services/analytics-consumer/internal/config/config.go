package config

import (
	"github.com/zeromicro/go-queue/kq"
	"github.com/zeromicro/go-zero/core/service"
)

type Config struct {
	service.ServiceConf
	DataSource      string
	Pool            PoolConfig
	KqConsumerConf  kq.KqConf
	DeadLetter      DeadLetterConf
	HealthCheckPort int `json:",default=8082"`
	InsertTimeoutMs int `json:",default=5000"`
}

type PoolConfig struct {
	MaxOpenConns    int `json:",default=10"`
	MaxIdleConns    int `json:",default=5"`
	ConnMaxLifetime int `json:",default=3600"` // seconds
}

// DeadLetterConf names the terminal topic for messages that can never be
// processed (undecodable or invalid payloads).
type DeadLetterConf struct {
	Brokers []string
	Topic   string
}
