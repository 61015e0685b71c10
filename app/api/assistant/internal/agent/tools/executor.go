package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Trace records one tool invocation for the final-answer prompt.
type Trace struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
	Result any            `json:"result"`
}

type Executor struct {
	log     logx.Logger
	toolset *Toolset
}

func NewExecutor(log logx.Logger, toolset *Toolset) *Executor {
	return &Executor{log: log, toolset: toolset}
}

// HandleCall runs one model-issued tool call and wraps the JSON payload as a
// tool message. Structured not-found results flow back to the model as
// ordinary payloads; only store failures come back as errors.
func (e *Executor) HandleCall(ctx context.Context, call schema.ToolCall) (*schema.Message, *Trace, error) {
	if e == nil || e.toolset == nil {
		return nil, nil, fmt.Errorf("tool executor unavailable")
	}

	rawArgs := make(map[string]any)
	if args := strings.TrimSpace(call.Function.Arguments); args != "" {
		if err := json.Unmarshal([]byte(args), &rawArgs); err != nil {
			return nil, nil, fmt.Errorf("parse arguments failed: %w", err)
		}
	}

	var (
		result any
		err    error
	)
	switch call.Function.Name {
	case ToolSearchPhones:
		result, err = e.toolset.SearchByFilters(ctx, ParseSearchFilters(rawArgs))
	case ToolPhoneDetails:
		result, err = e.toolset.GetDetails(ctx, toString(rawArgs["phone_id"]))
	case ToolListPhones:
		result, err = e.toolset.ListAll(ctx)
	case ToolComparePhones:
		result, err = e.toolset.Compare(ctx,
			toString(rawArgs["phone_id_1"]),
			toString(rawArgs["phone_id_2"]),
			toString(rawArgs["phone_id_3"]))
	case ToolExplainFeature:
		result = e.toolset.ExplainFeature(toString(rawArgs["feature"]))
	default:
		return nil, nil, fmt.Errorf("unknown tool: %s", call.Function.Name)
	}
	if err != nil {
		return nil, nil, err
	}

	contentBytes, _ := json.Marshal(result)

	trace := &Trace{
		Name:   call.Function.Name,
		Params: rawArgs,
		Result: result,
	}

	callID := call.ID
	if callID == "" {
		callID = fmt.Sprintf("call-%d", time.Now().UnixNano())
	}

	message := schema.ToolMessage(string(contentBytes), callID, schema.WithToolName(call.Function.Name))
	return message, trace, nil
}
