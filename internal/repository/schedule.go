// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// ScheduleRepository 排班周期仓储
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository 创建排班周期仓储
func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create 保存排班周期及其全部分配记录
// 引擎输出的 ID 为空，在这里统一补齐后落库。
// 周期和分配在同一事务内写入，任何一条失败都不留半个周期。
func (r *ScheduleRepository) Create(ctx context.Context, period *model.SchedulePeriod) error {
	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}
	now := time.Now()
	period.CreatedAt = now
	period.UpdatedAt = now

	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO schedule_periods (
				id, start_date, end_date, status, published_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, period.ID, period.StartDate, period.EndDate, period.Status,
			period.PublishedAt, period.CreatedAt, period.UpdatedAt,
		); err != nil {
			return errors.Database(err, "创建排班周期")
		}

		for i := range period.Assignments {
			a := &period.Assignments[i]
			if a.ID == uuid.Nil {
				a.ID = uuid.New()
			}
			a.ScheduleID = period.ID
			a.CreatedAt = now
			a.UpdatedAt = now

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO shift_assignments (
					id, schedule_id, employee_id, date, shift_type, notes,
					created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, a.ID, a.ScheduleID, a.EmployeeID, a.Date, a.ShiftType, a.Notes,
				a.CreatedAt, a.UpdatedAt,
			); err != nil {
				return errors.Database(err, "创建排班分配")
			}
		}
		return nil
	})
}

// GetByID 获取排班周期（含分配记录）
func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SchedulePeriod, error) {
	query := `
		SELECT id, start_date, end_date, status, published_at, created_at, updated_at
		FROM schedule_periods WHERE id = $1
	`
	period, err := scanPeriod(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("schedule_period", id.String())
	}
	if err != nil {
		return nil, errors.Database(err, "查询排班周期")
	}

	period.Assignments, err = r.getAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	return period, nil
}

// List 列出排班周期（不含分配记录）
func (r *ScheduleRepository) List(ctx context.Context, filter ListFilter) ([]*model.SchedulePeriod, error) {
	query := `
		SELECT id, start_date, end_date, status, published_at, created_at, updated_at
		FROM schedule_periods
	`
	var conds []string
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		args = append(args, filter.StartDate, filter.EndDate)
		conds = append(conds, fmt.Sprintf("start_date <= $%d AND end_date >= $%d", len(args), len(args)-1))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_date DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Database(err, "列出排班周期")
	}
	defer rows.Close()

	var periods []*model.SchedulePeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, errors.Database(err, "扫描排班周期")
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

// UpdateStatus 流转排班周期状态
// 先读当前状态并校验流转合法性；发布时写入发布时间。
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next model.ScheduleStatus) error {
	var current model.ScheduleStatus
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM schedule_periods WHERE id = $1`, id,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return errors.NotFound("schedule_period", id.String())
	}
	if err != nil {
		return errors.Database(err, "查询排班周期状态")
	}

	if !current.CanTransitionTo(next) {
		return errors.InvalidTransition(string(current), string(next))
	}

	var publishedAt *time.Time
	if next == model.SchedulePublished {
		now := time.Now()
		publishedAt = &now
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE schedule_periods
		SET status = $2, published_at = COALESCE($3, published_at), updated_at = $4
		WHERE id = $1
	`, id, next, publishedAt, time.Now())
	if err != nil {
		return errors.Database(err, "更新排班周期状态")
	}
	return nil
}

// AddAssignment 向已有排班周期追加一条人工分配
// 过去日期在这里拦截，引擎生成路径不做该校验。
func (r *ScheduleRepository) AddAssignment(ctx context.Context, a *model.ShiftAssignment) error {
	if err := a.Validate(time.Now().Format(model.DateFormat)); err != nil {
		return err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shift_assignments (
			id, schedule_id, employee_id, date, shift_type, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.ScheduleID, a.EmployeeID, a.Date, a.ShiftType, a.Notes,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return errors.Database(err, "创建排班分配")
	}
	return nil
}

// getAssignments 获取排班周期的全部分配记录
func (r *ScheduleRepository) getAssignments(ctx context.Context, scheduleID uuid.UUID) ([]model.ShiftAssignment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, schedule_id, employee_id, date, shift_type, notes,
			created_at, updated_at
		FROM shift_assignments
		WHERE schedule_id = $1
		ORDER BY date, shift_type, employee_id
	`, scheduleID)
	if err != nil {
		return nil, errors.Database(err, "查询排班分配")
	}
	defer rows.Close()

	var assignments []model.ShiftAssignment
	for rows.Next() {
		var a model.ShiftAssignment
		var date time.Time
		if err := rows.Scan(
			&a.ID, &a.ScheduleID, &a.EmployeeID, &date, &a.ShiftType, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, errors.Database(err, "扫描排班分配")
		}
		a.Date = date.Format(model.DateFormat)
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// scanPeriod 扫描单行排班周期记录
func scanPeriod(row Scanner) (*model.SchedulePeriod, error) {
	period := &model.SchedulePeriod{}
	var start, end time.Time

	err := row.Scan(
		&period.ID, &start, &end, &period.Status, &period.PublishedAt,
		&period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	period.StartDate = start.Format(model.DateFormat)
	period.EndDate = end.Format(model.DateFormat)
	return period, nil
}
