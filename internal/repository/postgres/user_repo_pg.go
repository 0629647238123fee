package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account. The WHERE clause makes the HR seat check and
// the insert one statement, so two concurrent HR registrations cannot both
// pass a count of 4; whichever lands second sees the updated count and
// returns sql.ErrNoRows.
func (r *UserRepository) Create(ctx context.Context, email, name string, passwordHash []byte, role domain.AccountRole) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, name, password_hash, role)
        SELECT $1, $2, $3, $4
        WHERE $4 <> 'HR' OR (SELECT COUNT(*) FROM user_account WHERE role = 'HR') < $5
        RETURNING id, email, name, password_hash, role, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, name, passwordHash, role, domain.MaxHRAccounts)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, name, role)
        VALUES ($1, $2, 'EMPLOYEE')
        ON CONFLICT (email) DO UPDATE
        SET name = COALESCE(NULLIF(EXCLUDED.name, ''), user_account.name),
            updated_at = NOW()
        RETURNING id, email, name, password_hash, role, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, name)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, name, password_hash, role, created_at, updated_at
        FROM user_account
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, name, password_hash, role, created_at, updated_at
        FROM user_account
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email string, passwordHash []byte) error {
	const query = `
        UPDATE user_account
        SET password_hash = $2,
            updated_at = NOW()
        WHERE email = $1
    `
	_, err := r.db.ExecContext(ctx, query, email, passwordHash)
	return err
}
