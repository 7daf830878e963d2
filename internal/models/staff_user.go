package models

import "time"

// Staff roles. Monetary dashboard figures are masked for non-admin roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// StaffUser represents a staff account for the admin panel.
type StaffUser struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	EmployeeID   string    `db:"employee_id" json:"employeeId"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
