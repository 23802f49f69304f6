// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	DataSource string
	Pool       PoolConfig
	Cache      CacheConfig
}

type PoolConfig struct {
	MaxOpenConns    int `json:",default=10"`
	MaxIdleConns    int `json:",default=5"`
	ConnMaxLifetime int `json:",default=3600"` // seconds
}

// CacheConfig controls the optional Redis summary cache; an empty Addr
// disables caching entirely.
type CacheConfig struct {
	Addr       string `json:",optional"`
	TTLSeconds int    `json:",default=60"`
}
