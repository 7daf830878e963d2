package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// StaffUserRepository handles data access for staff accounts.
type StaffUserRepository struct {
	db *sqlx.DB
}

// NewStaffUserRepository creates a new StaffUserRepository.
func NewStaffUserRepository(db *sqlx.DB) *StaffUserRepository {
	return &StaffUserRepository{db: db}
}

// GetByEmail returns the staff account for an email, or sql.ErrNoRows.
func (r *StaffUserRepository) GetByEmail(email string) (*models.StaffUser, error) {
	const q = `SELECT * FROM staff_users WHERE email = $1 LIMIT 1`
	var u models.StaffUser
	if err := r.db.Get(&u, q, email); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a staff account by id.
func (r *StaffUserRepository) GetByID(id int) (*models.StaffUser, error) {
	const q = `SELECT * FROM staff_users WHERE id = $1 LIMIT 1`
	var u models.StaffUser
	if err := r.db.Get(&u, q, id); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new staff account.
func (r *StaffUserRepository) Create(user *models.StaffUser) error {
	const q = `
        INSERT INTO staff_users (email, password_hash, full_name, employee_id, role, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.EmployeeID,
		user.Role,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdatePassword replaces the password hash for an account.
func (r *StaffUserRepository) UpdatePassword(id int, passwordHash string) error {
	const q = `UPDATE staff_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.db.Exec(q, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateProfile updates the editable profile fields for an account.
func (r *StaffUserRepository) UpdateProfile(user *models.StaffUser) error {
	const q = `
        UPDATE staff_users
        SET full_name = $1, employee_id = $2, updated_at = NOW()
        WHERE id = $3`
	res, err := r.db.Exec(q, user.FullName, user.EmployeeID, user.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
