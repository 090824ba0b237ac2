package hr

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"hrboard/internal/apiclient"
	"hrboard/internal/querycache"
)

// ResourceTeams tags cached team queries.
const ResourceTeams = "teams"

// Teams accesses the team endpoints.
type Teams struct {
	client *apiclient.Client
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewTeams creates the team service.
func NewTeams(client *apiclient.Client, cache *querycache.Cache, logger *slog.Logger) *Teams {
	if logger == nil {
		logger = slog.Default()
	}
	return &Teams{client: client, cache: cache, logger: logger}
}

// List returns all teams, cached under the "teams" tag.
func (s *Teams) List(ctx context.Context) ([]Team, error) {
	return querycache.Query(ctx, s.cache, querycache.NewKey(ResourceTeams, nil), func(ctx context.Context) ([]Team, error) {
		body, err := s.client.Raw(ctx, http.MethodGet, "/teams", nil, nil)
		if err != nil {
			return nil, err
		}
		items, ok := decodeList[Team](body, "teams")
		if !ok {
			s.logger.Warn("unexpected teams response shape")
		}
		return items, nil
	})
}

// Get fetches a single team by id.
func (s *Teams) Get(ctx context.Context, id int64) (*Team, error) {
	var out Team
	if err := s.client.JSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Members lists the employees assigned to a team. Not cached: the view that
// needs it always pairs it with a team fetch.
func (s *Teams) Members(ctx context.Context, id int64) ([]Employee, error) {
	body, err := s.client.Raw(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/members", id), nil, nil)
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Employee](body, "members")
	if !ok {
		s.logger.Warn("unexpected team members response shape", "team_id", id)
	}
	return items, nil
}

// Create adds a team and invalidates the team cache.
func (s *Teams) Create(ctx context.Context, req TeamRequest) (*Team, error) {
	var out Team
	if err := s.client.JSON(ctx, http.MethodPost, "/teams", nil, req, &out); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ResourceTeams)
	return &out, nil
}

// Update modifies a team and invalidates the team cache.
func (s *Teams) Update(ctx context.Context, id int64, req TeamRequest) (*Team, error) {
	var out Team
	if err := s.client.JSON(ctx, http.MethodPut, fmt.Sprintf("/teams/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ResourceTeams)
	return &out, nil
}

// Delete removes a team and invalidates the team cache.
func (s *Teams) Delete(ctx context.Context, id int64) error {
	if err := s.client.JSON(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d", id), nil, nil, nil); err != nil {
		return err
	}
	s.cache.Invalidate(ResourceTeams)
	return nil
}
