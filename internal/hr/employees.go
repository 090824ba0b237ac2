package hr

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"hrboard/internal/apiclient"
	"hrboard/internal/querycache"
)

// ResourceEmployees tags cached employee queries.
const ResourceEmployees = "employees"

// Employees accesses the employee endpoints.
type Employees struct {
	client *apiclient.Client
	cache  *querycache.Cache
	logger *slog.Logger
}

// NewEmployees creates the employee service.
func NewEmployees(client *apiclient.Client, cache *querycache.Cache, logger *slog.Logger) *Employees {
	if logger == nil {
		logger = slog.Default()
	}
	return &Employees{client: client, cache: cache, logger: logger}
}

// List returns all employees. The result is cached under the "employees"
// tag until a mutation invalidates it.
func (s *Employees) List(ctx context.Context) ([]Employee, error) {
	return querycache.Query(ctx, s.cache, querycache.NewKey(ResourceEmployees, nil), func(ctx context.Context) ([]Employee, error) {
		body, err := s.client.Raw(ctx, http.MethodGet, "/employees", nil, nil)
		if err != nil {
			return nil, err
		}
		items, ok := decodeList[Employee](body, "employees")
		if !ok {
			s.logger.Warn("unexpected employees response shape")
		}
		return items, nil
	})
}

// Get fetches a single employee by id.
func (s *Employees) Get(ctx context.Context, id int64) (*Employee, error) {
	var out Employee
	if err := s.client.JSON(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds an employee and invalidates the employee cache.
func (s *Employees) Create(ctx context.Context, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := s.client.JSON(ctx, http.MethodPost, "/employees", nil, req, &out); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ResourceEmployees)
	return &out, nil
}

// Update modifies an employee and invalidates the employee cache.
func (s *Employees) Update(ctx context.Context, id int64, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := s.client.JSON(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ResourceEmployees)
	return &out, nil
}

// Delete removes an employee and invalidates the employee cache.
func (s *Employees) Delete(ctx context.Context, id int64) error {
	if err := s.client.JSON(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil, nil); err != nil {
		return err
	}
	s.cache.Invalidate(ResourceEmployees)
	return nil
}

// AssignToTeam adds the employee to a team. Team membership is embedded in
// employee records, so only the employee cache is invalidated.
func (s *Employees) AssignToTeam(ctx context.Context, employeeID, teamID int64) error {
	if err := s.client.JSON(ctx, http.MethodPost, fmt.Sprintf("/employees/%d/teams/%d", employeeID, teamID), nil, nil, nil); err != nil {
		return err
	}
	s.cache.Invalidate(ResourceEmployees)
	return nil
}

// RemoveFromTeam removes the employee from a team.
func (s *Employees) RemoveFromTeam(ctx context.Context, employeeID, teamID int64) error {
	if err := s.client.JSON(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d/teams/%d", employeeID, teamID), nil, nil, nil); err != nil {
		return err
	}
	s.cache.Invalidate(ResourceEmployees)
	return nil
}
