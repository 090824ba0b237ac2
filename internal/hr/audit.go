package hr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hrboard/internal/apiclient"
	"hrboard/internal/querycache"
)

// Resource tags for cached audit queries.
const (
	ResourceAuditLogs  = "audit-logs"
	ResourceAuditStats = "audit-stats"
)

// LogFilter is the parameter set for audit log listings. The zero value
// lists the first page with the server's defaults.
type LogFilter struct {
	Page         int
	Limit        int
	Action       string
	ResourceType string
	StartDate    string
	EndDate      string
}

// Values encodes the filter as query parameters, omitting zero fields.
func (f LogFilter) Values() url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Action != "" {
		q.Set("action", f.Action)
	}
	if f.ResourceType != "" {
		q.Set("resource_type", f.ResourceType)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

// LogPage is the paginated envelope the audit log endpoint returns. The
// pagination metadata is passed through unmodified; callers drive paging
// from it.
type LogPage struct {
	Logs       []AuditLog `json:"logs"`
	Pagination Pagination `json:"pagination"`
}

// Stats is the audit activity summary.
type Stats struct {
	ActionStats   []ActionStat    `json:"action_stats"`
	DailyActivity []DailyActivity `json:"daily_activity"`
}

// TotalActions sums the per-action counts.
func (s *Stats) TotalActions() int {
	total := 0
	for _, stat := range s.ActionStats {
		total += stat.Count
	}
	return total
}

// ActivityOn returns the recorded action count for the given day. Server
// dates may carry a time component, so comparison is on the YYYY-MM-DD
// prefix.
func (s *Stats) ActivityOn(day string) int {
	for _, d := range s.DailyActivity {
		if strings.HasPrefix(d.Date, day) {
			return d.Count
		}
	}
	return 0
}

// Audit accesses the audit trail endpoints.
type Audit struct {
	client *apiclient.Client
	cache  *querycache.Cache
}

// NewAudit creates the audit service.
func NewAudit(client *apiclient.Client, cache *querycache.Cache) *Audit {
	return &Audit{client: client, cache: cache}
}

// Logs lists audit entries for the given filter. Results are keyed by the
// full parameter set, so changing any filter is a cache miss rather than an
// invalidation.
func (s *Audit) Logs(ctx context.Context, filter LogFilter) (*LogPage, error) {
	params := filter.Values()
	return querycache.Query(ctx, s.cache, querycache.NewKey(ResourceAuditLogs, params), func(ctx context.Context) (*LogPage, error) {
		var out LogPage
		if err := s.client.JSON(ctx, http.MethodGet, "/audit/logs", params, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// Stats returns the activity summary, cached under "audit-stats".
func (s *Audit) Stats(ctx context.Context) (*Stats, error) {
	return querycache.Query(ctx, s.cache, querycache.NewKey(ResourceAuditStats, nil), func(ctx context.Context) (*Stats, error) {
		var out Stats
		if err := s.client.JSON(ctx, http.MethodGet, "/audit/stats", nil, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}
