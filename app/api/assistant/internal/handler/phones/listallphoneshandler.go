// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package phones

import (
	"net/http"

	logic "PhoneMate/app/api/assistant/internal/logic/phones"
	"PhoneMate/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListAllPhonesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListAllPhonesLogic(r.Context(), svcCtx)
		resp, err := l.ListAllPhones()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
