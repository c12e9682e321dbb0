// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// EmployeeRepository 员工仓储
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create 创建员工
func (r *EmployeeRepository) Create(ctx context.Context, emp *model.Employee) error {
	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, hire_date,
			shift_preference, fixed_days_off, skills, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.HireDate,
		emp.ShiftPreference, intArray(emp.FixedDaysOff), pq.StringArray(emp.Skills), emp.IsActive,
		emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return errors.Database(err, "创建员工")
	}
	return nil
}

// GetByID 根据ID获取员工
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	query := selectEmployee + ` WHERE id = $1`
	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("employee", id.String())
	}
	if err != nil {
		return nil, errors.Database(err, "查询员工")
	}
	return emp, nil
}

// Update 更新员工
func (r *EmployeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	emp.UpdatedAt = time.Now()

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, hire_date = $5,
			shift_preference = $6, fixed_days_off = $7, skills = $8,
			is_active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.HireDate,
		emp.ShiftPreference, intArray(emp.FixedDaysOff), pq.StringArray(emp.Skills),
		emp.IsActive, emp.UpdatedAt,
	)
	if err != nil {
		return errors.Database(err, "更新员工")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("employee", emp.ID.String())
	}
	return nil
}

// Deactivate 员工离职（软操作，保留历史排班）
func (r *EmployeeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees SET is_active = FALSE, updated_at = $2 WHERE id = $1`,
		id, time.Now(),
	)
	if err != nil {
		return errors.Database(err, "停用员工")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("employee", id.String())
	}
	return nil
}

// List 列出员工
func (r *EmployeeRepository) List(ctx context.Context, filter ListFilter) ([]*model.Employee, error) {
	query := selectEmployee
	var args []interface{}

	if filter.Status == "active" {
		query += ` WHERE is_active = TRUE`
	} else if filter.Status == "inactive" {
		query += ` WHERE is_active = FALSE`
	}
	query += ` ORDER BY last_name, first_name`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Database(err, "列出员工")
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, errors.Database(err, "扫描员工")
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ListActive 列出全部在职员工（排班生成的输入）
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]*model.Employee, error) {
	return r.List(ctx, ListFilter{Status: "active"})
}

const selectEmployee = `
	SELECT id, first_name, last_name, email, hire_date,
		shift_preference, fixed_days_off, skills, is_active,
		created_at, updated_at
	FROM employees`

// scanEmployee 扫描单行员工记录
func scanEmployee(row Scanner) (*model.Employee, error) {
	emp := &model.Employee{}
	var hireDate time.Time
	var daysOff pq.Int64Array
	var skills pq.StringArray

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &hireDate,
		&emp.ShiftPreference, &daysOff, &skills, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	emp.HireDate = hireDate.Format(model.DateFormat)
	emp.FixedDaysOff = make([]int, len(daysOff))
	for i, d := range daysOff {
		emp.FixedDaysOff[i] = int(d)
	}
	emp.Skills = skills
	return emp, nil
}

// intArray 把 []int 转成 pq 可写入的数组类型
func intArray(values []int) pq.Int64Array {
	out := make(pq.Int64Array, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}
