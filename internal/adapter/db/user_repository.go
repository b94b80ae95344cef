package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

var userColumns = []string{
	"id",
	"email",
	"username",
	"full_name",
	"hashed_password",
	"is_active",
	"created_at",
}

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID             uint64         `db:"id"`
	Email          string         `db:"email"`
	Username       string         `db:"username"`
	FullName       sql.NullString `db:"full_name"`
	HashedPassword string         `db:"hashed_password"`
	IsActive       bool           `db:"is_active"`
	CreatedAt      time.Time      `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// List orders by id, which is creation order.
func (r *UserRepository) List(ctx context.Context, offset, limit uint64) ([]domain.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		OrderBy("id").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput, hashedPassword string) (domain.User, error) {
	query, args, err := squirrel.Insert("users").
		Columns("email", "username", "full_name", "hashed_password", "is_active").
		Values(input.Email, input.Username, input.FullName, hashedPassword, input.IsActive).
		ToSql()
	if err != nil {
		return domain.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.User{}, mapDuplicateKeyError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *UserRepository) Update(ctx context.Context, id uint64, input domain.UpdateUserInput) (domain.User, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.User{}, err
	}

	qb := squirrel.Update("users")
	changed := false

	if input.Email != nil {
		qb = qb.Set("email", *input.Email)
		changed = true
	}
	if input.Username != nil {
		qb = qb.Set("username", *input.Username)
		changed = true
	}
	if input.FullNameSet {
		qb = qb.Set("full_name", input.FullName)
		changed = true
	}
	if input.IsActive != nil {
		qb = qb.Set("is_active", *input.IsActive)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := qb.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.User{}, err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.User{}, mapDuplicateKeyError(err)
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, pred squirrel.Eq) (domain.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

// mapDuplicateKeyError catches unique-key races the service-level pre-checks
// cannot see.
func mapDuplicateKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return err
	}

	if strings.Contains(mysqlErr.Message, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:             row.ID,
		Email:          row.Email,
		Username:       row.Username,
		HashedPassword: row.HashedPassword,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
	}

	if row.FullName.Valid {
		value := row.FullName.String
		user.FullName = &value
	}

	return user
}
