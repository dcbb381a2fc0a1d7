package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/repository"
)

const projectSelectColumns = "id, name, description, manager_id, is_active, created_at"

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (name, description, manager_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.Name, p.Description, p.ManagerID, p.IsActive)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+projectSelectColumns+`
		FROM projects
		WHERE id = $1
	`, id)
	if err := scanProject(row, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectSelectColumns+`
		FROM projects
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) GetByManager(ctx context.Context, managerID string) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectSelectColumns+`
		FROM projects
		WHERE manager_id = $1
		ORDER BY created_at
	`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, upd repository.ProjectUpdate) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    manager_id  = COALESCE($4, manager_id),
		    is_active   = COALESCE($5, is_active)
		WHERE id = $1
		RETURNING `+projectSelectColumns+`
	`, id, upd.Name, upd.Description, upd.ManagerID, upd.IsActive)
	if err := scanProject(row, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project and its tasks in a single transaction so a
// crash cannot leave orphaned tasks behind.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanProject(row pgx.Row, p *entity.Project) error {
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.IsActive, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func collectProjects(rows pgx.Rows) ([]entity.Project, error) {
	var out []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
