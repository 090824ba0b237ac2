// Package hr exposes typed accessors for the HR API resources: employees,
// teams, and the audit trail. List reads go through the query cache;
// mutations invalidate the affected resource tags on success.
package hr

// User is the authenticated principal returned by the auth endpoints.
type User struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// Employee is a single employee record. Team membership is embedded.
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hire_date"`
	Teams      []Team `json:"teams"`
}

// FullName joins the first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Team is a named group of employees.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EmployeeRequest is the payload for creating or updating an employee.
type EmployeeRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	HireDate   string `json:"hire_date,omitempty"`
}

// TeamRequest is the payload for creating or updating a team.
type TeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AuditLog is a single audit trail entry.
type AuditLog struct {
	ID           int64  `json:"id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceID   *int64 `json:"resource_id"`
	Details      string `json:"details"`
	CreatedAt    string `json:"created_at"`
}

// Pagination is the server's paging metadata for audit log listings.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ActionStat is a per-action count from the audit stats endpoint.
type ActionStat struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// DailyActivity is a per-day count from the audit stats endpoint.
type DailyActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
