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

type SearchPhonesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchPhonesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchPhonesLogic {
	return &SearchPhonesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SearchPhonesLogic) SearchPhones(req *types.SearchPhonesRequest) (*tools.SearchResult, error) {
	filters := catalog.Filters{
		MaxPrice:       req.MaxPrice,
		MinPrice:       req.MinPrice,
		MinRAM:         req.MinRam,
		MinBattery:     req.MinBattery,
		MinRefreshRate: req.MinRefreshRate,
	}
	// A blank brand means "any brand", not "brand is empty".
	if req.Brand != nil && strings.TrimSpace(*req.Brand) != "" {
		filters.Brand = req.Brand
	}

	resp, err := l.svcCtx.Toolset.SearchByFilters(l.ctx, filters)
	if err != nil {
		l.Logger.Error("logic: search phones failed: ", err)
		if errors.Is(err, catalog.ErrStoreUnavailable) {
			return nil, xerrors.New(int(errno.CatalogUnavailable), "phone catalog is unavailable, try again later")
		}
		return nil, err
	}
	return resp, nil
}
