package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

var itemColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

type ItemRepository struct {
	db *sqlx.DB
}

type itemRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Price       float64        `db:"price"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (domain.Item, error) {
	query, args, err := squirrel.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Item{}, err
	}

	var row itemRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, domain.ErrItemNotFound
		}
		return domain.Item{}, err
	}

	return mapItemRowToDomainItem(row), nil
}

// List orders by id, which is creation order.
func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter, offset, limit uint64) ([]domain.Item, error) {
	qb := squirrel.Select(itemColumns...).From("items")
	if filter.IsActive != nil {
		qb = qb.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	query, args, err := qb.OrderBy("id").Offset(offset).Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapItemRowToDomainItem(row))
	}

	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, input domain.CreateItemInput) (domain.Item, error) {
	query, args, err := squirrel.Insert("items").
		Columns("name", "description", "price", "is_active").
		Values(input.Name, input.Description, input.Price, input.IsActive).
		ToSql()
	if err != nil {
		return domain.Item{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Item{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *ItemRepository) Update(ctx context.Context, id uint64, input domain.UpdateItemInput) (domain.Item, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Item{}, err
	}

	qb := squirrel.Update("items")
	changed := false

	if input.Name != nil {
		qb = qb.Set("name", *input.Name)
		changed = true
	}
	if input.DescriptionSet {
		qb = qb.Set("description", input.Description)
		changed = true
	}
	if input.Price != nil {
		qb = qb.Set("price", *input.Price)
		changed = true
	}
	if input.IsActive != nil {
		qb = qb.Set("is_active", *input.IsActive)
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
		return domain.Item{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Item{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *ItemRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) Count(ctx context.Context, filter domain.ItemFilter) (int64, error) {
	qb := squirrel.Select("COUNT(*)").From("items")
	if filter.IsActive != nil {
		qb = qb.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

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

func mapItemRowToDomainItem(row itemRow) domain.Item {
	item := domain.Item{
		ID:        row.ID,
		Name:      row.Name,
		Price:     row.Price,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		item.Description = &value
	}

	if row.UpdatedAt.Valid {
		value := row.UpdatedAt.Time
		item.UpdatedAt = &value
	}

	return item
}
