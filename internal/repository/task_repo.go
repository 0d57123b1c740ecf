package repository

import (
	"context"
	"errors"

	"taskmanager/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskStore is the storage contract the handlers depend on. Each call is
// a single statement against the table; there is no cross-call unit of
// work, so a mutation is durable once its method returns.
type TaskStore interface {
	List(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	Insert(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

// TaskRepository implements TaskStore on Postgres.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, is_completed FROM tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx, `SELECT id, title, description, is_completed FROM tasks WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert assigns the new id to t.ID via RETURNING.
func (r *TaskRepository) Insert(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, is_completed) VALUES ($1, $2, $3) RETURNING id`,
		t.Title, t.Description, t.IsCompleted).Scan(&t.ID)
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, is_completed = $3 WHERE id = $4`,
		t.Title, t.Description, t.IsCompleted, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
