package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequester struct {
	calls int
	urls  []string
	fn    func(call int, url string) (*http.Response, error)
}

func (f *fakeRequester) Do(_ context.Context, _, url string, _ any) (*http.Response, error) {
	f.calls++
	f.urls = append(f.urls, url)
	return f.fn(f.calls, url)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestModel(cli requester) *restPhonesModel {
	return &restPhonesModel{
		conf: Conf{
			BaseURL: "http://catalog.test",
			Table:   "phones",
			Retry: RetryConf{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   4 * time.Millisecond,
			},
		},
		cli:  cli,
		wait: func(context.Context, time.Duration) error { return nil },
	}
}

func TestRetryExhaustion(t *testing.T) {
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}
	m := newTestModel(cli)

	_, err := m.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	// Exactly MaxRetries attempts, none after the last failure.
	assert.Equal(t, 3, cli.calls)
}

func TestRetryKeepsContextErrorDistinguishable(t *testing.T) {
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}}
	m := newTestModel(cli)
	// The caller's budget fires during the first backoff sleep.
	m.wait = func(context.Context, time.Duration) error { return context.DeadlineExceeded }

	_, err := m.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, cli.calls)
}

func TestRetryRecovers(t *testing.T) {
	cli := &fakeRequester{fn: func(call int, _ string) (*http.Response, error) {
		if call < 3 {
			return jsonResponse(http.StatusServiceUnavailable, "upstream down"), nil
		}
		return jsonResponse(http.StatusOK, `[{"id":"pixel-8a","brand_name":"Google","phone_name":"Google Pixel 8a"}]`), nil
	}}
	m := newTestModel(cli)

	rows, err := m.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pixel-8a", rows[0].ID)
	assert.Equal(t, 3, cli.calls)
}

func TestMalformedPayloadIsEmptyNotError(t *testing.T) {
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"message":"unexpected shape"}`), nil
	}}
	m := newTestModel(cli)

	rows, err := m.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 1, cli.calls)
}

func TestResolveFallsBackToNameMatch(t *testing.T) {
	cli := &fakeRequester{fn: func(call int, url string) (*http.Response, error) {
		if strings.Contains(url, "id=eq.") {
			return jsonResponse(http.StatusOK, `[]`), nil
		}
		return jsonResponse(http.StatusOK, `[{"id":"iphone-15","brand_name":"Apple","phone_name":"Apple iPhone 15"}]`), nil
	}}
	m := newTestModel(cli)

	p, err := m.Resolve(context.Background(), "iphone")
	require.NoError(t, err)
	assert.Equal(t, "iphone-15", p.ID)
	require.Len(t, cli.urls, 2)
	assert.Contains(t, cli.urls[0], "id=eq.iphone")
	assert.Contains(t, cli.urls[1], "ilike.%2Aiphone%2A")
}

func TestResolveNotFound(t *testing.T) {
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	m := newTestModel(cli)

	_, err := m.Resolve(context.Background(), "zzz-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindFilteredQueryShape(t *testing.T) {
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	m := newTestModel(cli)

	_, err := m.FindFiltered(context.Background(), "Samsung", "galaxy")
	require.NoError(t, err)
	require.Len(t, cli.urls, 1)
	assert.Contains(t, cli.urls[0], "brand_name=ilike.Samsung")
	assert.Contains(t, cli.urls[0], "phone_name=ilike.%2Agalaxy%2A")
}

func TestSearchAppliesFilters(t *testing.T) {
	body := `[
		{"id":"a","brand_name":"Google","phone_name":"Pixel 8a","spotlight":{"ram_size":"8 GB"}},
		{"id":"b","brand_name":"Moto","phone_name":"Moto G54","spotlight":{"ram_size":"4GB"}},
		{"id":"c","brand_name":"Nothing","phone_name":"Phone 2","spotlight":{"ram_size":"tbd"}}
	]`
	cli := &fakeRequester{fn: func(int, string) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	}}
	m := newTestModel(cli)

	rows, err := m.Search(context.Background(), Filters{MinRAM: intPtr(8)})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "c", rows[1].ID)
}

func TestDecodeRowTolerance(t *testing.T) {
	body := `[
		{"id":"a","phone_name":"A","price":12999,"spotlight":null,"all_specs":null},
		{"id":"b","phone_name":"B","spotlight":{"ram_size":"8GB","weird":{"nested":true}},
		 "all_specs":{"Display":[{"label":"Refresh","info":"90Hz"}]}},
		"not a row"
	]`
	rows := decodeRows([]byte(body))
	require.Len(t, rows, 2)

	assert.Equal(t, "12999", rows[0].Price)
	assert.NotNil(t, rows[0].Spotlight)
	assert.NotNil(t, rows[0].AllSpecs)

	assert.Equal(t, "8GB", rows[1].Spotlight["ram_size"])
	_, hasWeird := rows[1].Spotlight["weird"]
	assert.False(t, hasWeird)
	hz, ok := rows[1].RefreshRate()
	require.True(t, ok)
	assert.Equal(t, 90, hz)
}

func TestBackoffDelayPolicy(t *testing.T) {
	c := RetryConf{MaxRetries: 5, BaseDelay: 500 * time.Millisecond, MaxDelay: 3 * time.Second}
	assert.Equal(t, 500*time.Millisecond, c.backoffDelay(1))
	assert.Equal(t, time.Second, c.backoffDelay(2))
	assert.Equal(t, 2*time.Second, c.backoffDelay(3))
	// Capped from here on.
	assert.Equal(t, 3*time.Second, c.backoffDelay(4))
	assert.Equal(t, 3*time.Second, c.backoffDelay(5))
}

func TestWaitForHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := waitFor(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
