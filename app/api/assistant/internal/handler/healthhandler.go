// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/common/consts/errno"
	"PhoneMate/app/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, response.NewResponse(errno.StatusOK, "ok"))
	}
}
