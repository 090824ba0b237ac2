package hr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrboard/internal/apiclient"
	"hrboard/internal/querycache"
)

// fakeAPI is a minimal in-memory backend. It counts list fetches so tests
// can tell a cache hit from a refetch.
type fakeAPI struct {
	mu            sync.Mutex
	employees     []Employee
	teams         []Team
	listEmployees int
	listTeams     int
	listLogs      int
	nextID        int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		employees: []Employee{{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}},
		teams:     []Team{{ID: 1, Name: "Platform"}},
		nextID:    2,
	}
}

func (f *fakeAPI) employeeFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listEmployees
}

func (f *fakeAPI) teamFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listTeams
}

func (f *fakeAPI) logFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listLogs
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listEmployees++
		json.NewEncoder(w).Encode(map[string]any{"employees": f.employees})
	})
	mux.HandleFunc("POST /api/employees", func(w http.ResponseWriter, r *http.Request) {
		var req EmployeeRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		emp := Employee{ID: f.nextID, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
		f.nextID++
		f.employees = append(f.employees, emp)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(emp)
	})
	mux.HandleFunc("DELETE /api/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/employees/{id}/teams/{team}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"message":"assigned"}`)
	})
	mux.HandleFunc("GET /api/teams", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listTeams++
		json.NewEncoder(w).Encode(f.teams)
	})
	mux.HandleFunc("POST /api/teams", func(w http.ResponseWriter, r *http.Request) {
		var req TeamRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		team := Team{ID: f.nextID, Name: req.Name, Description: req.Description}
		f.nextID++
		f.teams = append(f.teams, team)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(team)
	})
	mux.HandleFunc("GET /api/teams/{id}/members", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"members": f.employees})
	})
	mux.HandleFunc("GET /api/audit/logs", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.listLogs++
		f.mu.Unlock()
		q := r.URL.Query()
		page := q.Get("page")
		if page == "" {
			page = "1"
		}
		fmt.Fprintf(w, `{"logs":[{"id":1,"action":"create","resource_type":"employee"}],"pagination":{"page":%s,"limit":20,"total":1,"pages":1}}`, page)
	})
	mux.HandleFunc("GET /api/audit/stats", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"action_stats":[{"action":"create","count":3},{"action":"delete","count":2}],"daily_activity":[]}`)
	})
	return mux
}

type hrFixture struct {
	api       *fakeAPI
	employees *Employees
	teams     *Teams
	audit     *Audit
}

func newHRFixture(t *testing.T) *hrFixture {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL)
	cache := querycache.New()
	return &hrFixture{
		api:       api,
		employees: NewEmployees(client, cache, nil),
		teams:     NewTeams(client, cache, nil),
		audit:     NewAudit(client, cache),
	}
}

func TestEmployees_ListCached(t *testing.T) {
	f := newHRFixture(t)
	ctx := context.Background()

	first, err := f.employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.employees.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.api.employeeFetches())
}

func TestEmployees_MutationsForceRefetch(t *testing.T) {
	f := newHRFixture(t)
	ctx := context.Background()

	_, err := f.employees.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, f.api.employeeFetches())

	_, err = f.employees.Create(ctx, EmployeeRequest{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"})
	require.NoError(t, err)

	after, err := f.employees.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.api.employeeFetches())
	assert.Len(t, after, 2)

	require.NoError(t, f.employees.Delete(ctx, 2))
	_, err = f.employees.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, f.api.employeeFetches())

	require.NoError(t, f.employees.AssignToTeam(ctx, 1, 1))
	_, err = f.employees.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, f.api.employeeFetches())
}

func TestEmployees_MutationDoesNotTouchTeamCache(t *testing.T) {
	f := newHRFixture(t)
	ctx := context.Background()

	_, err := f.teams.List(ctx)
	require.NoError(t, err)

	_, err = f.employees.Create(ctx, EmployeeRequest{FirstName: "Grace"})
	require.NoError(t, err)

	_, err = f.teams.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.api.teamFetches())
}

func TestTeams_CreateInvalidatesAndRefetchIncludesNewTeam(t *testing.T) {
	f := newHRFixture(t)
	ctx := context.Background()

	before, err := f.teams.List(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	_, err = f.audit.Logs(ctx, LogFilter{})
	require.NoError(t, err)

	created, err := f.teams.Create(ctx, TeamRequest{Name: "Design", Description: "Product design"})
	require.NoError(t, err)

	after, err := f.teams.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.api.teamFetches())
	require.Len(t, after, 2)
	assert.Equal(t, created.Name, after[1].Name)

	// The audit log entry is untouched by a team mutation.
	_, err = f.audit.Logs(ctx, LogFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.api.logFetches())
}

func TestTeams_Members(t *testing.T) {
	f := newHRFixture(t)

	members, err := f.teams.Members(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada Lovelace", members[0].FullName())
}

func TestAudit_LogsKeyedByFilter(t *testing.T) {
	f := newHRFixture(t)
	ctx := context.Background()

	page1, err := f.audit.Logs(ctx, LogFilter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, page1.Pagination.Page)

	// Same filter hits the cache.
	_, err = f.audit.Logs(ctx, LogFilter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, f.api.logFetches())

	// A different filter is a distinct key, not an invalidation.
	page2, err := f.audit.Logs(ctx, LogFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page2.Pagination.Page)
	assert.Equal(t, 2, f.api.logFetches())
}

func TestAudit_Stats(t *testing.T) {
	f := newHRFixture(t)

	stats, err := f.audit.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalActions())
}

func TestStats_ActivityOn(t *testing.T) {
	stats := &Stats{DailyActivity: []DailyActivity{
		{Date: "2026-08-30", Count: 7},
		{Date: "2026-08-31T00:00:00Z", Count: 4},
	}}

	assert.Equal(t, 7, stats.ActivityOn("2026-08-30"))
	assert.Equal(t, 4, stats.ActivityOn("2026-08-31"))
	assert.Equal(t, 0, stats.ActivityOn("2026-09-01"))
}

func TestLogFilter_Values(t *testing.T) {
	assert.Empty(t, LogFilter{}.Values())

	q := LogFilter{Page: 2, Limit: 50, Action: "update", ResourceType: "team", StartDate: "2026-01-01", EndDate: "2026-01-31"}.Values()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "update", q.Get("action"))
	assert.Equal(t, "team", q.Get("resource_type"))
	assert.Equal(t, "2026-01-01", q.Get("start_date"))
	assert.Equal(t, "2026-01-31", q.Get("end_date"))
}
