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

type ComparePhonesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewComparePhonesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ComparePhonesLogic {
	return &ComparePhonesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ComparePhonesLogic) ComparePhones(req *types.ComparePhonesRequest) (*tools.CompareResult, error) {
	if strings.TrimSpace(req.PhoneId1) == "" || strings.TrimSpace(req.PhoneId2) == "" {
		return nil, xerrors.New(int(errno.InvalidParam), "phone_id1 and phone_id2 are required")
	}

	resp, err := l.svcCtx.Toolset.Compare(l.ctx, req.PhoneId1, req.PhoneId2, req.PhoneId3)
	if err != nil {
		l.Logger.Error("logic: compare phones failed: ", err)
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
