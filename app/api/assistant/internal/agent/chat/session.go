package chat

import "PhoneMate/app/api/assistant/internal/agent/tools"

// chatSession collects the tool traces of a single turn so the final answer
// can be grounded on what was actually fetched.
type chatSession struct {
	traces []*tools.Trace
}

func newChatSession() *chatSession {
	return &chatSession{}
}

func (s *chatSession) addTrace(t *tools.Trace) {
	if t == nil {
		return
	}
	s.traces = append(s.traces, t)
}
