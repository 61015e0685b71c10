package chat

import (
	"encoding/json"
	"testing"

	"PhoneMate/app/api/assistant/internal/agent/intent"
	"PhoneMate/app/api/assistant/internal/agent/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolNamesForRoutes(t *testing.T) {
	assert.Equal(t,
		[]string{tools.ToolSearchPhones, tools.ToolPhoneDetails, tools.ToolListPhones},
		toolNamesFor(intent.IntentRecommend))
	assert.Equal(t,
		[]string{tools.ToolPhoneDetails, tools.ToolComparePhones, tools.ToolExplainFeature},
		toolNamesFor(intent.IntentCompare))

	// Unknown routes fall back to the general shopping toolset.
	assert.Equal(t, toolNamesFor(intent.IntentShopping), toolNamesFor("something-else"))
	assert.Contains(t, toolNamesFor(intent.IntentShopping), tools.ToolExplainFeature)
}

func TestComposeUserPromptCarriesRouterHints(t *testing.T) {
	decision := &intent.Decision{
		Intent:   intent.IntentRecommend,
		Keywords: []string{"gaming", "battery"},
		Budget:   intent.BudgetInfo{Max: 30000},
		Phones:   []string{"Pixel 8a"},
	}

	prompt := composeUserPrompt("need a phone for gaming", decision)
	assert.Contains(t, prompt, "need a phone for gaming")
	assert.Contains(t, prompt, "gaming, battery")
	assert.Contains(t, prompt, "max 30000")
	assert.Contains(t, prompt, "Pixel 8a")
}

func TestComposeUserPromptWithoutHintsIsJustTheQuery(t *testing.T) {
	prompt := composeUserPrompt("hello", &intent.Decision{Intent: intent.IntentShopping})
	assert.Equal(t, "hello", prompt)
}

func TestRefusalMessageIsStructured(t *testing.T) {
	msg := refusalMessage("call-1", tools.ToolListPhones, "tool call limit reached (6), answer with what you have")
	require.NotNil(t, msg)
	assert.Equal(t, "call-1", msg.ToolCallID)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &payload))
	assert.Contains(t, payload["error"], "limit reached")
}

func TestSessionIgnoresNilTraces(t *testing.T) {
	s := newChatSession()
	s.addTrace(nil)
	s.addTrace(&tools.Trace{Name: tools.ToolListPhones})
	require.Len(t, s.traces, 1)
}
