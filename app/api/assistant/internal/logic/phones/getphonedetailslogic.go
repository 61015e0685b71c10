// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package phones

import (
	"context"
	"errors"
	"strings"

	"PhoneMate/app/api/assistant/internal/agent/tools"
	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/api/assistant/internal/types"
	"PhoneMate/app/common/consts/errno"
	"PhoneMate/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type GetPhoneDetailsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPhoneDetailsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPhoneDetailsLogic {
	return &GetPhoneDetailsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPhoneDetailsLogic) GetPhoneDetails(req *types.GetPhoneDetailsRequest) (*tools.DetailsResult, error) {
	if strings.TrimSpace(req.PhoneId) == "" {
		return nil, xerrors.New(int(errno.InvalidParam), "phone id is required")
	}

	resp, err := l.svcCtx.Toolset.GetDetails(l.ctx, req.PhoneId)
	if err != nil {
		l.Logger.Error("logic: get phone details failed: ", err)
		if errors.Is(err, catalog.ErrStoreUnavailable) {
			return nil, xerrors.New(int(errno.CatalogUnavailable), "phone catalog is unavailable, try again later")
		}
		return nil, err
	}
	if !resp.Success {
		return nil, xerrors.New(int(errno.PhoneNotFound), resp.Error)
	}
	return resp, nil
}
