// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package phones

import (
	"net/http"

	logic "PhoneMate/app/api/assistant/internal/logic/phones"
	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/api/assistant/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ComparePhonesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ComparePhonesRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewComparePhonesLogic(r.Context(), svcCtx)
		resp, err := l.ComparePhones(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
