package config

import (
	"PhoneMate/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Catalog   catalog.Conf
	ChatModel ModelConf       `json:",optional"`
	Redis     redis.RedisConf `json:",optional"`

	LogConf logx.LogConf
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}
