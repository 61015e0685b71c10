package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"PhoneMate/app/api/assistant/internal/glossary"
	"PhoneMate/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
)

// Toolset implements the read-only tool surface shared by the agent executor
// and the REST endpoints. Every operation is side-effect free and safe to
// retry; "not found" is an ordinary structured outcome, only store failures
// surface as errors.
type Toolset struct {
	phones catalog.PhonesModel
	gloss  *glossary.Glossary
}

func NewToolset(phones catalog.PhonesModel, gloss *glossary.Glossary) *Toolset {
	return &Toolset{phones: phones, gloss: gloss}
}

type SearchResult struct {
	Success        bool            `json:"success"`
	Count          int             `json:"count"`
	FiltersApplied map[string]any  `json:"filters_applied"`
	Phones         []catalog.Phone `json:"phones"`
	Message        string          `json:"message"`
}

type DetailsResult struct {
	Success bool           `json:"success"`
	Phone   *catalog.Phone `json:"phone,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message"`
}

type ListResult struct {
	Success bool            `json:"success"`
	Total   int             `json:"total"`
	Phones  []catalog.Phone `json:"phones"`
	Message string          `json:"message"`
}

type CompareResult struct {
	Success bool            `json:"success"`
	Phones  []catalog.Phone `json:"phones,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message"`
}

type ExplainResult struct {
	Success           bool                  `json:"success"`
	Feature           *glossary.Explanation `json:"feature,omitempty"`
	Error             string                `json:"error,omitempty"`
	Message           string                `json:"message,omitempty"`
	AvailableFeatures []string              `json:"available_features,omitempty"`
}

func (t *Toolset) SearchByFilters(ctx context.Context, f catalog.Filters) (*SearchResult, error) {
	rows, err := t.phones.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Success:        true,
		Count:          len(rows),
		FiltersApplied: f.Applied(),
		Phones:         rows,
		Message:        fmt.Sprintf("Found %d phone(s) matching your criteria", len(rows)),
	}, nil
}

func (t *Toolset) GetDetails(ctx context.Context, id string) (*DetailsResult, error) {
	if strings.TrimSpace(id) == "" {
		return &DetailsResult{
			Success: false,
			Error:   "phone_id is required",
			Message: "Provide a phone id or name",
		}, nil
	}
	p, err := t.phones.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return &DetailsResult{
				Success: false,
				Error:   fmt.Sprintf("Phone '%s' not found in catalog", id),
				Message: "Please check the phone ID and try again",
			}, nil
		}
		return nil, err
	}
	return &DetailsResult{
		Success: true,
		Phone:   p,
		Message: fmt.Sprintf("Details for %s", p.PhoneName),
	}, nil
}

func (t *Toolset) ListAll(ctx context.Context) (*ListResult, error) {
	rows, err := t.phones.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Success: true,
		Total:   len(rows),
		Phones:  rows,
		Message: fmt.Sprintf("Here are all %d available phones", len(rows)),
	}, nil
}

// Compare resolves two mandatory ids and one optional id. A missing
// mandatory phone fails the comparison; a missing optional third phone is
// silently dropped. Output preserves input order.
func (t *Toolset) Compare(ctx context.Context, id1, id2, id3 string) (*CompareResult, error) {
	if strings.TrimSpace(id1) == "" || strings.TrimSpace(id2) == "" {
		return &CompareResult{
			Success: false,
			Error:   "two phone ids are required",
			Message: "Provide at least phone_id_1 and phone_id_2",
		}, nil
	}

	p1, err := t.phones.Resolve(ctx, id1)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}
	p2, err := t.phones.Resolve(ctx, id2)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}
	if p1 == nil || p2 == nil {
		return &CompareResult{
			Success: false,
			Error:   "One or more phones not found",
			Message: "Please check the phone IDs and try again",
		}, nil
	}

	phones := []catalog.Phone{*p1, *p2}
	if strings.TrimSpace(id3) != "" {
		if p3, err := t.phones.Resolve(ctx, id3); err == nil {
			phones = append(phones, *p3)
		} else if !errors.Is(err, catalog.ErrNotFound) {
			logx.WithContext(ctx).Errorf("optional compare id %q dropped: %v", id3, err)
		}
	}
	return &CompareResult{
		Success: true,
		Phones:  phones,
		Message: fmt.Sprintf("Comparing %d phones", len(phones)),
	}, nil
}

func (t *Toolset) ExplainFeature(term string) *ExplainResult {
	if e, ok := t.gloss.Explain(term); ok {
		return &ExplainResult{Success: true, Feature: &e}
	}
	terms := t.gloss.Terms()
	return &ExplainResult{
		Success:           false,
		Error:             fmt.Sprintf("Feature '%s' explanation not found", term),
		Message:           "Available explanations: " + strings.Join(terms, ", "),
		AvailableFeatures: terms,
	}
}
