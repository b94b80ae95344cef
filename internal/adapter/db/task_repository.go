package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

// Every task read joins the owning user in the same pass so the email and
// username can be hydrated without a per-row round trip.
var taskColumns = []string{
	"t.id",
	"t.title",
	"t.description",
	"t.priority",
	"t.status",
	"t.user_id",
	"t.start_time",
	"t.end_time",
	"t.category",
	"t.created_at",
	"t.updated_at",
	"u.email AS user_email",
	"u.username AS user_username",
}

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Priority     string         `db:"priority"`
	Status       string         `db:"status"`
	UserID       uint64         `db:"user_id"`
	StartTime    sql.NullTime   `db:"start_time"`
	EndTime      sql.NullTime   `db:"end_time"`
	Category     sql.NullString `db:"category"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
	UserEmail    sql.NullString `db:"user_email"`
	UserUsername sql.NullString `db:"user_username"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func selectTasks() squirrel.SelectBuilder {
	return squirrel.Select(taskColumns...).
		From("tasks t").
		LeftJoin("users u ON u.id = t.user_id")
}

func applyTaskFilter(qb squirrel.SelectBuilder, filter domain.TaskFilter) squirrel.SelectBuilder {
	if filter.UserID != nil {
		qb = qb.Where(squirrel.Eq{"t.user_id": *filter.UserID})
	}
	if filter.Status != nil {
		qb = qb.Where(squirrel.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		qb = qb.Where(squirrel.Eq{"t.priority": string(*filter.Priority)})
	}
	if filter.Category != nil {
		qb = qb.Where(squirrel.Eq{"t.category": *filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.Expr("LOWER(t.title) LIKE ?", pattern),
			squirrel.Expr("LOWER(t.description) LIKE ?", pattern),
		})
	}
	return qb
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	query, args, err := selectTasks().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return domain.Task{}, err
	}

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// List orders by id, which is creation order.
func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter, offset, limit uint64) ([]domain.Task, error) {
	qb := applyTaskFilter(selectTasks(), filter).
		OrderBy("t.id").
		Offset(offset).
		Limit(limit)

	return r.selectDomainTasks(ctx, qb)
}

// ListByDateRange qualifies a task when its start_time falls within
// [start, end], or when start_time is null and its created_at does. The
// created_at fallback only applies to tasks without a start_time.
func (r *TaskRepository) ListByDateRange(ctx context.Context, start, end time.Time, userID *uint64) ([]domain.Task, error) {
	qb := selectTasks().Where(squirrel.Or{
		squirrel.And{
			squirrel.GtOrEq{"t.start_time": start},
			squirrel.LtOrEq{"t.start_time": end},
		},
		squirrel.And{
			squirrel.Eq{"t.start_time": nil},
			squirrel.GtOrEq{"t.created_at": start},
			squirrel.LtOrEq{"t.created_at": end},
		},
	})
	if userID != nil {
		qb = qb.Where(squirrel.Eq{"t.user_id": *userID})
	}

	return r.selectDomainTasks(ctx, qb.OrderBy("t.id"))
}

func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time, userID *uint64) ([]domain.Task, error) {
	qb := overdueFilter(selectTasks(), now, userID)
	return r.selectDomainTasks(ctx, qb.OrderBy("t.id"))
}

func (r *TaskRepository) ListByPriority(ctx context.Context, priority domain.TaskPriority, userID *uint64) ([]domain.Task, error) {
	qb := selectTasks().Where(squirrel.Eq{"t.priority": string(priority)})
	if userID != nil {
		qb = qb.Where(squirrel.Eq{"t.user_id": *userID})
	}
	return r.selectDomainTasks(ctx, qb.OrderBy("t.id"))
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	query, args, err := squirrel.Insert("tasks").
		Columns("title", "description", "priority", "status", "user_id", "start_time", "end_time", "category").
		Values(
			input.Title,
			input.Description,
			string(input.Priority),
			string(input.Status),
			input.UserID,
			input.StartTime,
			input.EndTime,
			input.Category,
		).
		ToSql()
	if err != nil {
		return domain.Task{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// Row must exist before the partial update is applied.
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	qb := squirrel.Update("tasks")
	changed := false

	if input.Title != nil {
		qb = qb.Set("title", *input.Title)
		changed = true
	}
	if input.DescriptionSet {
		qb = qb.Set("description", input.Description)
		changed = true
	}
	if input.Priority != nil {
		qb = qb.Set("priority", string(*input.Priority))
		changed = true
	}
	if input.Status != nil {
		qb = qb.Set("status", string(*input.Status))
		changed = true
	}
	if input.UserID != nil {
		qb = qb.Set("user_id", *input.UserID)
		changed = true
	}
	if input.StartTimeSet {
		qb = qb.Set("start_time", input.StartTime)
		changed = true
	}
	if input.EndTimeSet {
		qb = qb.Set("end_time", input.EndTime)
		changed = true
	}
	if input.CategorySet {
		qb = qb.Set("category", input.Category)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := qb.
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Count(ctx context.Context, filter domain.TaskCountFilter) (int64, error) {
	qb := squirrel.Select("COUNT(*)").From("tasks t")
	if filter.UserID != nil {
		qb = qb.Where(squirrel.Eq{"t.user_id": *filter.UserID})
	}
	if filter.Status != nil {
		qb = qb.Where(squirrel.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		qb = qb.Where(squirrel.Eq{"t.priority": string(*filter.Priority)})
	}

	return r.count(ctx, qb)
}

func (r *TaskRepository) CountOverdue(ctx context.Context, now time.Time, userID *uint64) (int64, error) {
	qb := overdueFilter(squirrel.Select("COUNT(*)").From("tasks t"), now, userID)
	return r.count(ctx, qb)
}

// overdueFilter excludes completed and cancelled tasks regardless of end_time.
func overdueFilter(qb squirrel.SelectBuilder, now time.Time, userID *uint64) squirrel.SelectBuilder {
	qb = qb.
		Where(squirrel.Lt{"t.end_time": now}).
		Where(squirrel.NotEq{"t.status": string(domain.TaskStatusCompleted)}).
		Where(squirrel.NotEq{"t.status": string(domain.TaskStatusCancelled)})
	if userID != nil {
		qb = qb.Where(squirrel.Eq{"t.user_id": *userID})
	}
	return qb
}

func (r *TaskRepository) selectDomainTasks(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Task, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) count(ctx context.Context, qb squirrel.SelectBuilder) (int64, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}

	return count, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Status:    domain.TaskStatus(row.Status),
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.StartTime.Valid {
		value := row.StartTime.Time
		task.StartTime = &value
	}

	if row.EndTime.Valid {
		value := row.EndTime.Time
		task.EndTime = &value
	}

	if row.Category.Valid {
		value := row.Category.String
		task.Category = &value
	}

	if row.UpdatedAt.Valid {
		value := row.UpdatedAt.Time
		task.UpdatedAt = &value
	}

	if row.UserEmail.Valid && row.UserUsername.Valid {
		task.Owner = &domain.TaskOwner{
			Email:    row.UserEmail.String,
			Username: row.UserUsername.String,
		}
	}

	return task
}
