package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type facilitatorRepository struct {
	DB *sql.DB
}

func NewFacilitatorRepository(db *sql.DB) domain.FacilitatorRepository {
	return &facilitatorRepository{DB: db}
}

func (r *facilitatorRepository) List(ctx context.Context, activeOnly bool, department string) ([]*domain.Facilitator, error) {
	query := `
		SELECT id, user_id, employee_id, first_name, last_name, email, phone,
			department, position, specialties, is_active, hire_date, created_at, updated_at
		FROM facilitators
		WHERE 1=1
	`
	var args []any
	if activeOnly {
		query += ` AND is_active = 1`
	}
	if department != "" {
		query += ` AND department = ?`
		args = append(args, department)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilitators []*domain.Facilitator
	for rows.Next() {
		f := &domain.Facilitator{}
		var (
			userID                            sql.NullInt64
			employeeID, phone, dept, position sql.NullString
			specialties                       sql.NullString
			isActive                          int
			hireDate                          sql.NullInt64
			createdAt, updatedAt              int64
		)
		err := rows.Scan(&f.ID, &userID, &employeeID, &f.FirstName, &f.LastName, &f.Email, &phone,
			&dept, &position, &specialties, &isActive, &hireDate, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		if userID.Valid {
			f.UserID = &userID.Int64
		}
		f.EmployeeID = employeeID.String
		f.Phone = phone.String
		f.Department = dept.String
		f.Position = position.String
		f.Specialties = decodeStringList(specialties)
		f.IsActive = isActive != 0
		if hireDate.Valid {
			t := time.Unix(hireDate.Int64, 0).UTC()
			f.HireDate = &t
		}
		f.CreatedAt = time.Unix(createdAt, 0).UTC()
		f.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		facilitators = append(facilitators, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if facilitators == nil {
		facilitators = []*domain.Facilitator{}
	}
	return facilitators, nil
}
