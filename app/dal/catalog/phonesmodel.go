package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Conf points the client at a PostgREST-style catalog endpoint.
type Conf struct {
	BaseURL string
	APIKey  string `json:",optional"`
	Table   string `json:",default=phones"`
	Retry   RetryConf
}

var _ PhonesModel = (*restPhonesModel)(nil)

type (
	// PhonesModel is the read-only query surface over the remote catalog
	// table. Every method either returns the full row set for its query or
	// fails; there are no partial results.
	PhonesModel interface {
		FindAll(ctx context.Context) ([]Phone, error)
		FindFiltered(ctx context.Context, brand, nameContains string) ([]Phone, error)
		FindOne(ctx context.Context, id string) (*Phone, error)
		FindOneByName(ctx context.Context, text string) (*Phone, error)
		Resolve(ctx context.Context, identifier string) (*Phone, error)
		Search(ctx context.Context, filters Filters) ([]Phone, error)
	}

	requester interface {
		Do(ctx context.Context, method, url string, data any) (*http.Response, error)
	}

	restPhonesModel struct {
		conf Conf
		cli  requester
		wait func(ctx context.Context, d time.Duration) error
	}
)

// NewPhonesModel builds the default client on go-zero's httpc service, which
// carries per-host breaker and tracing. The returned model holds no mutable
// state and is safe for sequential reuse across calls.
func NewPhonesModel(c Conf) PhonesModel {
	svc := httpc.NewService("catalog", func(r *http.Request) *http.Request {
		if c.APIKey != "" {
			r.Header.Set("apikey", c.APIKey)
			r.Header.Set("Authorization", "Bearer "+c.APIKey)
		}
		return r
	})
	return &restPhonesModel{conf: c, cli: svc, wait: waitFor}
}

func (m *restPhonesModel) FindAll(ctx context.Context) ([]Phone, error) {
	params := url.Values{}
	params.Set("select", "*")
	return m.query(ctx, params)
}

// FindFiltered narrows rows at the store: brand is a case-insensitive
// equality match, nameContains a case-insensitive substring match.
func (m *restPhonesModel) FindFiltered(ctx context.Context, brand, nameContains string) ([]Phone, error) {
	params := url.Values{}
	params.Set("select", "*")
	if brand != "" {
		params.Set("brand_name", "ilike."+brand)
	}
	if nameContains != "" {
		params.Set("phone_name", "ilike.*"+nameContains+"*")
	}
	return m.query(ctx, params)
}

func (m *restPhonesModel) FindOne(ctx context.Context, id string) (*Phone, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", "eq."+id)
	params.Set("limit", "1")
	rows, err := m.query(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// FindOneByName returns the first case-insensitive substring match on
// phone_name; multiple matches are not disambiguated.
func (m *restPhonesModel) FindOneByName(ctx context.Context, text string) (*Phone, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNotFound
	}
	params := url.Values{}
	params.Set("select", "*")
	params.Set("phone_name", "ilike.*"+text+"*")
	params.Set("limit", "1")
	rows, err := m.query(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Resolve maps a user-supplied identifier to a single record: exact id match
// first, then partial name match. ErrNotFound is an ordinary outcome here,
// distinct from a store failure.
func (m *restPhonesModel) Resolve(ctx context.Context, identifier string) (*Phone, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrNotFound
	}
	p, err := m.FindOne(ctx, identifier)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return m.FindOneByName(ctx, identifier)
}

// Search fetches the full row set and filters client-side, so that the
// permissive unknown-field semantics of Filters apply uniformly.
func (m *restPhonesModel) Search(ctx context.Context, filters Filters) ([]Phone, error) {
	rows, err := m.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filters.Apply(rows), nil
}

func (m *restPhonesModel) query(ctx context.Context, params url.Values) ([]Phone, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s",
		strings.TrimRight(m.conf.BaseURL, "/"), m.conf.Table, params.Encode())

	attempts := m.conf.Retry.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		rows, err := m.queryOnce(ctx, endpoint)
		if err == nil {
			return rows, nil
		}
		lastErr = err
		logx.WithContext(ctx).Errorf("catalog query attempt %d/%d failed: %v", attempt, attempts, err)
		if attempt == attempts {
			break
		}
		if werr := m.wait(ctx, m.conf.Retry.backoffDelay(attempt)+jitter()); werr != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, werr)
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, lastErr)
}

func (m *restPhonesModel) queryOnce(ctx context.Context, endpoint string) ([]Phone, error) {
	resp, err := m.cli.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return decodeRows(body), nil
}
