package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	"github.com/taskhive/taskhive/internal/domain/repository"
)

const taskSelectColumns = "id, project_id, title, description, status, assigned_to_id, resolution_notes, is_verified, created_at"

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (project_id, title, description, status, assigned_to_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, t.ProjectID, t.Title, t.Description, t.Status, t.AssignedToID)
	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskSelectColumns+`
		FROM tasks
		WHERE id = $1
	`, id)
	if err := scanTask(row, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskSelectColumns+`
		FROM tasks
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) GetByAssignee(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskSelectColumns+`
		FROM tasks
		WHERE assigned_to_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *TaskRepository) GetByManager(ctx context.Context, managerID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.project_id, t.title, t.description, t.status, t.assigned_to_id, t.resolution_notes, t.is_verified, t.created_at
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.manager_id = $1
		ORDER BY t.created_at
	`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// Update applies the partial patch in one statement. Assignment is handled
// with an explicit flag so the patch can clear assigned_to_id to NULL, which
// COALESCE alone cannot express.
func (r *TaskRepository) Update(ctx context.Context, id string, patch lifecycle.Patch) (*entity.Task, error) {
	setAssignee := patch.AssignedToID != nil
	var assignee *string
	if setAssignee && *patch.AssignedToID != "" {
		assignee = patch.AssignedToID
	}

	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title            = COALESCE($2, title),
		    description      = COALESCE($3, description),
		    status           = COALESCE($4, status),
		    assigned_to_id   = CASE WHEN $5::boolean THEN $6 ELSE assigned_to_id END,
		    resolution_notes = COALESCE($7, resolution_notes),
		    is_verified      = COALESCE($8, is_verified)
		WHERE id = $1
		RETURNING `+taskSelectColumns+`
	`, id, patch.Title, patch.Description, patch.Status, setAssignee, assignee, patch.ResolutionNotes, patch.IsVerified)
	if err := scanTask(row, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row, t *entity.Task) error {
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.AssignedToID, &t.ResolutionNotes, &t.IsVerified, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	var out []entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.AssignedToID, &t.ResolutionNotes, &t.IsVerified, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
