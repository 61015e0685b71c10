// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"
	"strconv"
	"strings"

	agentchat "PhoneMate/app/api/assistant/internal/agent/chat"
	"PhoneMate/app/api/assistant/internal/svc"
	"PhoneMate/app/api/assistant/internal/types"
	"PhoneMate/app/common/consts/biz"
	"PhoneMate/app/common/consts/errno"
	"PhoneMate/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, xerrors.New(int(errno.InvalidParam), "message is required")
	}
	if l.svcCtx.ChatModel == nil {
		return nil, xerrors.New(int(errno.ChatUnavailable), "chat is not configured on this deployment")
	}

	sessionID := strings.TrimSpace(req.SessionId)
	if sessionID == "" {
		sessionID = strconv.FormatInt(snowflake.Next(), 10)
	}
	if l.svcCtx.Sessions != nil {
		l.svcCtx.Sessions.Set(sessionID, message)
	}

	ctx, cancel := context.WithTimeout(l.ctx, biz.ChatBudget)
	defer cancel()

	result, err := agentchat.NewAgent(ctx, l.svcCtx).Chat(ctx, message)
	if err != nil {
		l.Logger.Error("logic: chat turn failed: ", err)
		return nil, xerrors.New(int(errno.ChatUnavailable), "assistant is unavailable, try again later")
	}
	if result == nil {
		return nil, xerrors.New(int(errno.InternalError), "empty chat result")
	}

	return &types.ChatResponse{
		SessionId: sessionID,
		Reply:     result.Answer,
		Intent:    result.Intent,
	}, nil
}
