package repositories

import (
	"context"
	"errors"

	"employee-portal/internal/entities"
	db "employee-portal/internal/infrastructure/bd"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const employeeTable = "employees"

var employeeSelectFields = []string{
	"id", "employee_id", "first_name", "last_name", "email", "password",
	"department", "role", "manager_id", "date_of_joining", "status",
	"created_at", "updated_at",
}

// Какие поля фильтра и сортировки разрешено протаскивать в SQL.
var employeeAllowedFields = map[string]string{
	"id":              "id",
	"role":            "role",
	"manager_id":      "manager_id",
	"status":          "status",
	"first_name":      "first_name",
	"last_name":       "last_name",
	"date_of_joining": "date_of_joining",
	"created_at":      "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, entity *entities.Employee) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, entity *entities.Employee) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Password,
		&e.Department, &e.Role, &e.ManagerID, &e.DateOfJoining, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// mapPgError переводит нарушение уникального индекса (email, employee_id)
// в типовую ошибку конфликта.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.ErrDuplicateKey
	}
	return err
}

// applyEmployeeWhere добавляет поисковое условие и точные фильтры.
// Поиск — регистронезависимое вхождение по пяти текстовым полям.
func applyEmployeeWhere(builder sq.SelectBuilder, filter types.Filter) sq.SelectBuilder {
	for key, value := range filter.Filter {
		dbCol, ok := employeeAllowedFields[key]
		if !ok {
			continue
		}
		builder = builder.Where(sq.Eq{dbCol: value})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"department": pattern},
			sq.ILike{"employee_id": pattern},
		})
	}

	return builder
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	countQuery, countArgs, err := applyEmployeeWhere(
		psql.Select("COUNT(id)").From(employeeTable), filter,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []entities.Employee{}, 0, nil
	}

	listBuilder := applyEmployeeWhere(
		psql.Select(employeeSelectFields...).From(employeeTable), filter,
	)
	listBuilder = db.ApplyListParams(listBuilder, types.Filter{
		Sort:           filter.Sort,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
		WithPagination: filter.WithPagination,
	}, employeeAllowedFields)
	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("id DESC")
	}

	mainQuery, mainArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	r.logger.Debug("Выполнение запроса списка сотрудников", zap.String("query", mainQuery), zap.Any("args", mainArgs))

	rows, err := r.storage.Query(ctx, mainQuery, mainArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}
	return employees, totalCount, rows.Err()
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeSelectFields...).
		From(employeeTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployee(r.storage.QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeSelectFields...).
		From(employeeTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployee(r.storage.QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, entity *entities.Employee) (*entities.Employee, error) {
	query, args, err := psql.Insert(employeeTable).
		Columns("employee_id", "first_name", "last_name", "email", "password",
			"department", "role", "manager_id", "date_of_joining", "status").
		Values(entity.EmployeeID, entity.FirstName, entity.LastName, entity.Email, entity.Password,
			entity.Department, entity.Role, entity.ManagerID, entity.DateOfJoining, entity.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).
		Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return entity, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, entity *entities.Employee) (*entities.Employee, error) {
	query, args, err := psql.Update(employeeTable).
		Set("employee_id", entity.EmployeeID).
		Set("first_name", entity.FirstName).
		Set("last_name", entity.LastName).
		Set("email", entity.Email).
		Set("password", entity.Password).
		Set("department", entity.Department).
		Set("role", entity.Role).
		Set("manager_id", entity.ManagerID).
		Set("date_of_joining", entity.DateOfJoining).
		Set("status", entity.Status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": entity.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).Scan(&entity.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err)
	}
	return entity, nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(employeeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
