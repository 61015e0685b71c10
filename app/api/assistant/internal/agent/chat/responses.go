package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"PhoneMate/app/api/assistant/internal/agent/intent"
	"PhoneMate/app/api/assistant/internal/agent/tools"

	"github.com/cloudwego/eino/schema"
)

const fallbackAnswer = "Sorry, I could not find anything useful in the catalog for that. " +
	"Try rephrasing, or ask about a specific phone by name."

const basePrompt = `You are a shopping assistant for a mobile phone store.
Answer only with information returned by your tools; never invent phones,
prices or specs. Prices are in Indian rupees. Keep answers short and concrete,
and always mention the phone id when you recommend a specific phone.`

var routePrompts = map[string]string{
	intent.IntentShopping: `Help the customer find and understand phones in the
catalog. Use search for constraint-based questions and the feature tool for
terminology questions such as OIS or refresh rate.`,
	intent.IntentRecommend: `Recommend phones that fit the customer's budget and
needs. Search with the constraints they gave, then pick at most three options
and explain in one line each why it fits.`,
	intent.IntentCompare: `Compare the phones the customer named. Fetch both with
the compare tool and lay out price, RAM, battery and display side by side,
then state which one wins on each axis.`,
}

func (a *Agent) systemPrompt(ctx context.Context, route string) string {
	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\n")
	if extra, ok := routePrompts[route]; ok {
		b.WriteString(extra)
		b.WriteString("\n\n")
	}
	if a.reference != nil {
		if table, err := a.reference.Get(ctx); err == nil && table != "" {
			b.WriteString("Known phones (name | id):\n")
			b.WriteString(table)
		}
	}
	return b.String()
}

func composeUserPrompt(query string, decision *intent.Decision) string {
	var b strings.Builder
	b.WriteString(query)

	if len(decision.Keywords) > 0 {
		fmt.Fprintf(&b, "\n\n(router keywords: %s)", strings.Join(decision.Keywords, ", "))
	}
	if decision.Budget.Min > 0 || decision.Budget.Max > 0 {
		fmt.Fprintf(&b, "\n(router budget: min %d, max %d rupees)", decision.Budget.Min, decision.Budget.Max)
	}
	if len(decision.Phones) > 0 {
		fmt.Fprintf(&b, "\n(phones mentioned: %s)", strings.Join(decision.Phones, ", "))
	}
	return b.String()
}

// composeFinalAnswer asks the model to summarize the tool results when the
// tool loop ended without a plain-text reply.
func (a *Agent) composeFinalAnswer(ctx context.Context, query string, traces []*tools.Trace) string {
	if a.model == nil || len(traces) == 0 {
		return ""
	}
	payload, err := json.Marshal(traces)
	if err != nil {
		return ""
	}

	messages := []*schema.Message{
		schema.SystemMessage(basePrompt),
		schema.UserMessage(fmt.Sprintf(
			"The customer asked: %q\n\nTool results:\n%s\n\nAnswer the customer using only these results.",
			query, payload)),
	}
	reply, err := a.model.Generate(ctx, messages)
	if err != nil || reply == nil {
		a.log.Errorf("compose final answer failed: %v", err)
		return ""
	}
	return strings.TrimSpace(reply.Content)
}
