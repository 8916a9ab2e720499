package postgresql

import (
	"context"
	"errors"

	"github.com/bizmanage/payroll-grid-go/internal/domain/auth"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements auth.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, email, password_hash, full_name, role, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var user auth.User
	err := q.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.CompanyID, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, err
	}

	return user, nil
}
