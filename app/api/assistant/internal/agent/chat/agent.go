package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"PhoneMate/app/api/assistant/internal/agent/intent"
	"PhoneMate/app/api/assistant/internal/agent/tools"
	"PhoneMate/app/api/assistant/internal/reference"
	"PhoneMate/app/api/assistant/internal/svc"

	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	maxToolIterations      = 4
	maxToolCallsPerSession = 6
)

// Agent routes one user turn to a specialist toolset and drives the
// tool-calling loop against the catalog.
type Agent struct {
	log       logx.Logger
	model     model.ToolCallingChatModel
	intent    *intent.Classifier
	executor  *tools.Executor
	reference *reference.Cache

	toolMu     sync.Mutex
	toolModels map[string]model.ToolCallingChatModel
}

// Result is one completed chat turn.
type Result struct {
	Answer string
	Intent string
	Traces []*tools.Trace
}

func NewAgent(ctx context.Context, svcCtx *svc.ServiceContext) *Agent {
	a := &Agent{
		log:        logx.WithContext(ctx),
		reference:  svcCtx.Reference,
		toolModels: make(map[string]model.ToolCallingChatModel),
	}

	if svcCtx.ChatModel != nil {
		a.model = svcCtx.ChatModel
		classifier, err := intent.NewClassifier(ctx, a.log, svcCtx.ChatModel)
		if err != nil {
			a.log.Errorf("init intent classifier failed: %v", err)
		} else {
			a.intent = classifier
		}
	}
	if svcCtx.Toolset != nil {
		a.executor = tools.NewExecutor(a.log, svcCtx.Toolset)
	}
	return a
}

func (a *Agent) Chat(ctx context.Context, query string) (*Result, error) {
	if a.model == nil {
		return nil, fmt.Errorf("chat model unavailable")
	}
	if a.executor == nil {
		return nil, fmt.Errorf("tool executor unavailable")
	}

	intentStart := time.Now()
	decision := a.decideIntent(ctx, query)
	a.log.Infof("routed to %q in %s", decision.Route(), time.Since(intentStart))

	return a.runToolDrivenChat(ctx, query, decision)
}

// decideIntent is best effort; the general shopping assistant can handle
// anything the router fails on.
func (a *Agent) decideIntent(ctx context.Context, query string) *intent.Decision {
	if a.intent == nil {
		return &intent.Decision{Intent: intent.IntentShopping}
	}
	decision, err := a.intent.Analyze(ctx, intent.Input{Query: query})
	if err != nil || decision == nil {
		a.log.Errorf("intent decision failed, falling back to shopping: %v", err)
		return &intent.Decision{Intent: intent.IntentShopping}
	}
	return decision
}

func (a *Agent) ensureToolModel(route string) (model.ToolCallingChatModel, error) {
	if a.model == nil {
		return nil, fmt.Errorf("chat model does not support tool calling")
	}

	a.toolMu.Lock()
	defer a.toolMu.Unlock()

	if m, ok := a.toolModels[route]; ok {
		return m, nil
	}
	modelWithTools, err := a.model.WithTools(tools.ToolInfosByName(toolNamesFor(route)...))
	if err != nil {
		return nil, err
	}
	a.toolModels[route] = modelWithTools
	return modelWithTools, nil
}

// toolNamesFor mirrors the specialist split: the recommender sticks to
// search, the comparison assistant gets the compare tool.
func toolNamesFor(route string) []string {
	switch route {
	case intent.IntentRecommend:
		return []string{tools.ToolSearchPhones, tools.ToolPhoneDetails, tools.ToolListPhones}
	case intent.IntentCompare:
		return []string{tools.ToolPhoneDetails, tools.ToolComparePhones, tools.ToolExplainFeature}
	default:
		return []string{tools.ToolSearchPhones, tools.ToolPhoneDetails, tools.ToolListPhones, tools.ToolExplainFeature}
	}
}
