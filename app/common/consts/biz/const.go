package biz

import "time"

const (
	// ChatBudget is the wall-clock budget for a single chat turn, including
	// every catalog round trip made by tool calls.
	ChatBudget = time.Minute

	SessionExpire = time.Hour * 2

	PhoneReferenceKey    = "assistant:phone_reference"
	PhoneReferenceExpire = time.Minute * 30
)
