package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"studioops/shared/constant"
	"studioops/shared/dto"
	"studioops/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "event_date",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "event_date",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := &dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			if *q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *q)
			}
		})
	}
}
