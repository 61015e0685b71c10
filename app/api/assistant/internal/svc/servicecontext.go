package svc

import (
	"context"

	"PhoneMate/app/api/assistant/internal/agent/tools"
	"PhoneMate/app/api/assistant/internal/config"
	"PhoneMate/app/api/assistant/internal/glossary"
	"PhoneMate/app/api/assistant/internal/reference"
	"PhoneMate/app/common/consts/biz"
	"PhoneMate/app/dal/catalog"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config

	Phones    catalog.PhonesModel
	Glossary  *glossary.Glossary
	Toolset   *tools.Toolset
	Reference *reference.Cache
	Sessions  *collection.Cache

	ChatModel *ark.ChatModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{Config: c}

	sc.Phones = catalog.NewPhonesModel(c.Catalog)
	sc.Glossary = glossary.New()
	sc.Toolset = tools.NewToolset(sc.Phones, sc.Glossary)

	var store *redis.Redis
	if c.Redis.Host != "" {
		store = redis.MustNewRedis(c.Redis)
	}
	sc.Reference = reference.NewCache(store, sc.Phones)

	sessions, err := collection.NewCache(biz.SessionExpire, collection.WithName("chat_sessions"))
	if err != nil {
		logx.Errorw("init session cache failed", logx.Field("err", err))
	} else {
		sc.Sessions = sessions
	}

	// Chat is optional: without model credentials the catalog tools still
	// serve the REST surface.
	if c.ChatModel.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			sc.ChatModel = cm
			logx.Infow("ark chat model initialized")
		}
	}

	return sc
}
