package domain

import (
	"context"
	"time"
)

// Facilitator is a staff member who runs events.
type Facilitator struct {
	ID          int64      `json:"id"`
	UserID      *int64     `json:"user_id,omitempty"`
	EmployeeID  string     `json:"employee_id,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Department  string     `json:"department,omitempty"`
	Position    string     `json:"position,omitempty"`
	Specialties []string   `json:"specialties"`
	IsActive    bool       `json:"is_active"`
	HireDate    *time.Time `json:"hire_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FullName returns the display name used by the API.
func (f *Facilitator) FullName() string {
	return f.FirstName + " " + f.LastName
}

// FacilitatorRepository defines storage for facilitators.
type FacilitatorRepository interface {
	// List returns facilitators ordered by last then first name, optionally
	// restricted to active ones and/or a department.
	List(ctx context.Context, activeOnly bool, department string) ([]*Facilitator, error)
}
