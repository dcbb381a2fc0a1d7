package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/repository"
)

const (
	uniqueViolation      = "23505"
	usernameConstraint   = "users_username_lower_idx"
	singleAdminConstrnt  = "users_single_admin_idx"
	userSelectColumns    = "id, username, password_hash, full_name, role, created_at"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, u.Username, u.Password, u.FullName, u.Role)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case singleAdminConstrnt:
				return repository.ErrAdminExists
			case usernameConstraint:
				return repository.ErrDuplicateUsername
			}
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userSelectColumns+`
		FROM users
		WHERE id = $1
	`, id)
	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userSelectColumns+`
		FROM users
		WHERE lower(username) = lower($1)
	`, username)
	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userSelectColumns+`
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepository) GetByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userSelectColumns+`
		FROM users
		WHERE role = $1
		ORDER BY created_at
	`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func scanUser(row pgx.Row, u *entity.User) error {
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]entity.User, error) {
	var out []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
