package tools

import (
	"context"
	"encoding/json"
	"testing"

	"PhoneMate/app/dal/catalog"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func newTestExecutor(m catalog.PhonesModel) *Executor {
	return NewExecutor(logx.WithContext(context.Background()), newTestToolset(m))
}

func toolCall(name, args string) schema.ToolCall {
	return schema.ToolCall{
		ID: "call-1",
		Function: schema.FunctionCall{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestHandleCallSearch(t *testing.T) {
	e := newTestExecutor(&fakeModel{phones: testPhones()})

	msg, trace, err := e.HandleCall(context.Background(),
		toolCall(ToolSearchPhones, `{"min_ram": "8", "max_price": 50000}`))
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, ToolSearchPhones, trace.Name)

	var res SearchResult
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &res))
	assert.True(t, res.Success)
	// iPhone 15 is over budget, Pixel 8a and 12R survive.
	assert.Equal(t, 2, res.Count)
}

func TestHandleCallCompare(t *testing.T) {
	e := newTestExecutor(&fakeModel{phones: testPhones()})

	msg, _, err := e.HandleCall(context.Background(),
		toolCall(ToolComparePhones, `{"phone_id_1":"a","phone_id_2":"b","phone_id_3":"zzz"}`))
	require.NoError(t, err)

	var res CompareResult
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &res))
	require.True(t, res.Success)
	assert.Len(t, res.Phones, 2)
}

func TestHandleCallUnknownTool(t *testing.T) {
	e := newTestExecutor(&fakeModel{})

	_, _, err := e.HandleCall(context.Background(), toolCall("order_phone", `{}`))
	assert.Error(t, err)
}

func TestHandleCallBadArguments(t *testing.T) {
	e := newTestExecutor(&fakeModel{})

	_, _, err := e.HandleCall(context.Background(), toolCall(ToolSearchPhones, `not json`))
	assert.Error(t, err)
}

func TestHandleCallStoreFailure(t *testing.T) {
	e := newTestExecutor(&fakeModel{err: catalog.ErrStoreUnavailable})

	_, _, err := e.HandleCall(context.Background(), toolCall(ToolListPhones, ``))
	assert.ErrorIs(t, err, catalog.ErrStoreUnavailable)
}

func TestParseSearchFilters(t *testing.T) {
	f := ParseSearchFilters(map[string]any{
		"brand":             "Samsung",
		"max_price":         float64(30000),
		"min_ram":           "8",
		"battery_threshold": json.Number("5000"),
		"refresh_rate":      nil,
	})
	require.NotNil(t, f.Brand)
	assert.Equal(t, "Samsung", *f.Brand)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, int64(30000), *f.MaxPrice)
	require.NotNil(t, f.MinRAM)
	assert.Equal(t, 8, *f.MinRAM)
	require.NotNil(t, f.MinBattery)
	assert.Equal(t, 5000, *f.MinBattery)
	assert.Nil(t, f.MinRefreshRate)
	assert.Nil(t, f.MinPrice)
}

func TestToolInfosByName(t *testing.T) {
	infos := ToolInfosByName(ToolComparePhones, ToolPhoneDetails)
	require.Len(t, infos, 2)
	// Registry order, not argument order.
	assert.Equal(t, ToolPhoneDetails, infos[0].Name)
	assert.Equal(t, ToolComparePhones, infos[1].Name)
}
