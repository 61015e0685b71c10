package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	classifierModelNodeKey = "intent_classifier_model"
	classifierToolName     = "submit_intent_decision"
)

type Classifier struct {
	log      logx.Logger
	runnable compose.Runnable[Input, *Decision]
	tools    []*schema.ToolInfo
}

type Input struct {
	Query string
}

func NewClassifier(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	intentTool := buildDecisionTool()
	tools := []*schema.ToolInfo{intentTool}

	intentModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind intent tool failed: %v", err)
		} else {
			intentModel = modelWithTools
		}
	}

	chain := compose.NewChain[Input, *Decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Input) ([]*schema.Message, error) {
		systemPrompt := `You are the router for a mobile-phone shopping assistant. Read the user's message and decide which specialist should handle it:
- shopping: general questions, spec lookups, feature explanations, browsing
- recommendation: the user wants phone suggestions for a budget or use case
- comparison: the user wants two or three specific phones compared

Also extract core keywords, any budget range in rupees (0 when unknown), and any phone ids or names the user mentions. Submit the result by calling the tool ` + classifierToolName + ` with matching arguments; do not output any other text.`

		var user strings.Builder
		user.WriteString("User message: ")
		user.WriteString(in.Query)

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(user.String()),
		}, nil
	}))

	chain.AppendChatModel(intentModel, compose.WithNodeKey(classifierModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Decision, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := extractToolArguments(msg)
		if payload == "" {
			return nil, fmt.Errorf("intent decision tool payload missing")
		}

		var decision Decision
		if err := json.Unmarshal([]byte(payload), &decision); err != nil {
			return nil, fmt.Errorf("unmarshal intent decision: %w", err)
		}
		decision.RawOutput = payload
		if decision.Intent == "" {
			decision.Intent = IntentShopping
		}
		return &decision, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

func (c *Classifier) Analyze(ctx context.Context, in Input) (*Decision, error) {
	if c == nil || c.runnable == nil {
		return nil, fmt.Errorf("intent classifier unavailable")
	}

	var opts []compose.Option
	if len(c.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(c.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(classifierModelNodeKey)
		opts = append(opts, opt)
	}

	return c.runnable.Invoke(ctx, in, opts...)
}

func extractToolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, classifierToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func buildDecisionTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: classifierToolName,
		Desc: "Submit the routing decision for the current user message",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"intent": {
				Type:     schema.String,
				Desc:     "Which specialist should handle the message",
				Enum:     []string{IntentShopping, IntentRecommend, IntentCompare},
				Required: true,
			},
			"keywords": {
				Type: schema.Array,
				Desc: "Core keywords extracted from the message",
				ElemInfo: &schema.ParameterInfo{
					Type: schema.String,
				},
			},
			"budget": {
				Type: schema.Object,
				Desc: "Budget range in rupees, 0 when unknown",
				SubParams: map[string]*schema.ParameterInfo{
					"min": {
						Type: schema.Integer,
						Desc: "Lower bound in rupees",
					},
					"max": {
						Type: schema.Integer,
						Desc: "Upper bound in rupees",
					},
				},
			},
			"phones": {
				Type: schema.Array,
				Desc: "Phone ids or names the user mentioned, in order",
				ElemInfo: &schema.ParameterInfo{
					Type: schema.String,
				},
			},
			"explanation": {
				Type: schema.String,
				Desc: "Short reason for the decision",
			},
		}),
	}
}
