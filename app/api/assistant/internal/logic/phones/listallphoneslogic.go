// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package phones

import (
	"context"
	"errors"

	"PhoneMate/app/api/assistant/internal/agent/tools"
	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/common/consts/errno"
	"PhoneMate/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ListAllPhonesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListAllPhonesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListAllPhonesLogic {
	return &ListAllPhonesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListAllPhonesLogic) ListAllPhones() (*tools.ListResult, error) {
	resp, err := l.svcCtx.Toolset.ListAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: list phones failed: ", err)
		if errors.Is(err, catalog.ErrStoreUnavailable) {
			return nil, xerrors.New(int(errno.CatalogUnavailable), "phone catalog is unavailable, try again later")
		}
		return nil, err
	}
	return resp, nil
}
