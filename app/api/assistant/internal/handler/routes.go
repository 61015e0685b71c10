// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "PhoneMate/app/api/assistant/internal/handler/chat"
	phones "PhoneMate/app/api/assistant/internal/handler/phones"
	"PhoneMate/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/assistant/chat",
				Handler: chat.ChatHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/assistant/phones",
				Handler: phones.ListAllPhonesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/assistant/phones/search",
				Handler: phones.SearchPhonesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/assistant/phones/compare",
				Handler: phones.ComparePhonesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/assistant/phones/:id",
				Handler: phones.GetPhoneDetailsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/assistant/features",
				Handler: phones.ExplainFeatureHandler(serverCtx),
			},
		},
	)
}
