package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"PhoneMate/app/api/assistant/internal/agent/intent"

	"github.com/cloudwego/eino/schema"
)

// runToolDrivenChat lets the model call catalog tools until it produces a
// plain answer, with a hard cap on iterations and total tool calls.
func (a *Agent) runToolDrivenChat(ctx context.Context, query string, decision *intent.Decision) (*Result, error) {
	start := time.Now()
	defer func() {
		a.log.Infof("tool driven chat finished in %s", time.Since(start))
	}()

	route := decision.Route()
	toolModel, err := a.ensureToolModel(route)
	if err != nil {
		return nil, err
	}

	messages := []*schema.Message{
		schema.SystemMessage(a.systemPrompt(ctx, route)),
		schema.UserMessage(composeUserPrompt(query, decision)),
	}

	session := newChatSession()
	callSignatures := make(map[string]struct{})
	var finalMsg *schema.Message
	toolCalls := 0

	for i := 0; i < maxToolIterations; i++ {
		reply, err := toolModel.Generate(ctx, messages)
		if err != nil {
			return nil, err
		}
		if reply == nil {
			return nil, errors.New("model returned empty message")
		}
		messages = append(messages, reply)

		if len(reply.ToolCalls) == 0 {
			finalMsg = reply
			break
		}

		capped := false
		for _, call := range reply.ToolCalls {
			callID := call.ID
			if callID == "" {
				callID = fmt.Sprintf("call-%d", time.Now().UnixNano())
			}
			name := strings.TrimSpace(call.Function.Name)

			signature := strings.ToLower(name) + "|" + strings.TrimSpace(call.Function.Arguments)
			if _, seen := callSignatures[signature]; seen {
				messages = append(messages, refusalMessage(callID, name,
					"duplicate tool invocation rejected, use the result you already have"))
				continue
			}
			if toolCalls >= maxToolCallsPerSession {
				messages = append(messages, refusalMessage(callID, name,
					fmt.Sprintf("tool call limit reached (%d), answer with what you have", maxToolCallsPerSession)))
				capped = true
				break
			}

			callSignatures[signature] = struct{}{}
			toolCalls++

			toolMsg, trace, err := a.executor.HandleCall(ctx, call)
			if err != nil {
				a.log.Errorf("tool %s failed: %v", name, err)
				messages = append(messages, refusalMessage(callID, name, err.Error()))
				continue
			}
			session.addTrace(trace)
			messages = append(messages, toolMsg)
		}

		if capped {
			break
		}
	}

	var answer string
	if finalMsg != nil {
		answer = strings.TrimSpace(finalMsg.Content)
	}
	if answer == "" {
		answer = a.composeFinalAnswer(ctx, query, session.traces)
	}
	if strings.TrimSpace(answer) == "" {
		answer = fallbackAnswer
	}

	return &Result{
		Answer: answer,
		Intent: route,
		Traces: session.traces,
	}, nil
}

func refusalMessage(callID, toolName, reason string) *schema.Message {
	payload, _ := json.Marshal(map[string]string{"error": reason})
	return schema.ToolMessage(string(payload), callID, schema.WithToolName(toolName))
}
