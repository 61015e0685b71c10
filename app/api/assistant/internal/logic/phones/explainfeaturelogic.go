// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package phones

import (
	"context"
	"strings"

	"PhoneMate/app/api/assistant/internal/agent/tools"
	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/api/assistant/internal/types"
	"PhoneMate/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ExplainFeatureLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExplainFeatureLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExplainFeatureLogic {
	return &ExplainFeatureLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ExplainFeatureLogic) ExplainFeature(req *types.ExplainFeatureRequest) (*tools.ExplainResult, error) {
	if strings.TrimSpace(req.Feature) == "" {
		return nil, xerrors.New(int(errno.InvalidParam), "feature is required")
	}
	resp := l.svcCtx.Toolset.ExplainFeature(req.Feature)
	if !resp.Success {
		msg := resp.Error
		if len(resp.AvailableFeatures) > 0 {
			msg += "; known features: " + strings.Join(resp.AvailableFeatures, ", ")
		}
		return nil, xerrors.New(int(errno.FeatureNotFound), msg)
	}
	return resp, nil
}
