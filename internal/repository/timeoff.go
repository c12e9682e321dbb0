// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// TimeOffRepository 休假申请仓储
type TimeOffRepository struct {
	db DB
}

// NewTimeOffRepository 创建休假申请仓储
func NewTimeOffRepository(db DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// Create 创建休假申请
func (r *TimeOffRepository) Create(ctx context.Context, req *model.TimeOffRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO time_off_requests (
			id, employee_id, start_date, end_date, type, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.EmployeeID, req.StartDate, req.EndDate,
		req.Type, req.Status, req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return errors.Database(err, "创建休假申请")
	}
	return nil
}

// GetByID 根据ID获取休假申请
func (r *TimeOffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeOffRequest, error) {
	query := selectTimeOff + ` WHERE id = $1`
	req, err := scanTimeOff(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("time_off_request", id.String())
	}
	if err != nil {
		return nil, errors.Database(err, "查询休假申请")
	}
	return req, nil
}

// UpdateStatus 更新申请状态（审批通过/驳回/撤销）
func (r *TimeOffRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TimeOffStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE time_off_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return errors.Database(err, "更新休假申请状态")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("time_off_request", id.String())
	}
	return nil
}

// ListByEmployee 列出员工的休假申请
func (r *TimeOffRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*model.TimeOffRequest, error) {
	query := selectTimeOff + ` WHERE employee_id = $1 ORDER BY start_date`
	return r.queryList(ctx, query, employeeID)
}

// ListOverlapping 列出与日期范围有交集的休假申请
// 排班生成只关心与排班窗口相交的申请。
func (r *TimeOffRepository) ListOverlapping(ctx context.Context, rng model.DateRange) ([]*model.TimeOffRequest, error) {
	query := selectTimeOff + ` WHERE start_date <= $2 AND end_date >= $1 ORDER BY start_date`
	return r.queryList(ctx, query, rng.StartDate, rng.EndDate)
}

func (r *TimeOffRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*model.TimeOffRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Database(err, "列出休假申请")
	}
	defer rows.Close()

	var requests []*model.TimeOffRequest
	for rows.Next() {
		req, err := scanTimeOff(rows)
		if err != nil {
			return nil, errors.Database(err, "扫描休假申请")
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

const selectTimeOff = `
	SELECT id, employee_id, start_date, end_date, type, status, notes,
		created_at, updated_at
	FROM time_off_requests`

// scanTimeOff 扫描单行休假申请记录
func scanTimeOff(row Scanner) (*model.TimeOffRequest, error) {
	req := &model.TimeOffRequest{}
	var start, end time.Time

	err := row.Scan(
		&req.ID, &req.EmployeeID, &start, &end, &req.Type, &req.Status, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.StartDate = start.Format(model.DateFormat)
	req.EndDate = end.Format(model.DateFormat)
	return req, nil
}
