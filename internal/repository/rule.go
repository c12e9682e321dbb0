// Package repository 提供数据访问层
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
	"github.com/zhiban/zhiban/pkg/scheduler/constraint"
)

// RuleRecord 排班规则的存储形态
// 参数以 JSONB 存储，加载后由规则工厂校验解析。
type RuleRecord struct {
	model.BaseModel
	Name       string          `json:"name" db:"name"`
	RuleType   constraint.Type `json:"rule_type" db:"rule_type"`
	Priority   int             `json:"priority" db:"priority"`
	IsActive   bool            `json:"is_active" db:"is_active"`
	Parameters model.JSONMap   `json:"parameters" db:"parameters"`
}

// ToRule 把存储记录解析成可评估的规则
func (rec *RuleRecord) ToRule() (constraint.Rule, error) {
	return constraint.Parse(rec.RuleType, rec.Priority, rec.IsActive, rec.Parameters)
}

// RuleRepository 排班规则仓储
type RuleRepository struct {
	db DB
}

// NewRuleRepository 创建排班规则仓储
func NewRuleRepository(db DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create 创建规则
// 入库前先走一遍规则工厂，参数非法的记录不允许落库。
func (r *RuleRepository) Create(ctx context.Context, rec *RuleRecord) error {
	if _, err := rec.ToRule(); err != nil {
		return err
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	params, err := json.Marshal(rec.Parameters)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "序列化规则参数失败")
	}

	query := `
		INSERT INTO scheduling_rules (
			id, name, rule_type, priority, is_active, parameters,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.RuleType, rec.Priority, rec.IsActive, params,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return errors.Database(err, "创建规则")
	}
	return nil
}

// GetByID 根据ID获取规则
func (r *RuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*RuleRecord, error) {
	query := selectRule + ` WHERE id = $1`
	rec, err := scanRule(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("scheduling_rule", id.String())
	}
	if err != nil {
		return nil, errors.Database(err, "查询规则")
	}
	return rec, nil
}

// SetActive 启用或停用规则
func (r *RuleRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE scheduling_rules SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now(),
	)
	if err != nil {
		return errors.Database(err, "更新规则状态")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.NotFound("scheduling_rule", id.String())
	}
	return nil
}

// List 列出规则（优先级降序）
func (r *RuleRepository) List(ctx context.Context) ([]*RuleRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectRule+` ORDER BY priority DESC, created_at`)
	if err != nil {
		return nil, errors.Database(err, "列出规则")
	}
	defer rows.Close()

	var records []*RuleRecord
	for rows.Next() {
		rec, err := scanRule(rows)
		if err != nil {
			return nil, errors.Database(err, "扫描规则")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LoadRules 加载并解析全部规则（排班生成的输入）
// 任何一条记录解析失败都中止加载：静默跳过会让规则被悄悄绕开。
func (r *RuleRepository) LoadRules(ctx context.Context) ([]constraint.Rule, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	rules := make([]constraint.Rule, 0, len(records))
	for _, rec := range records {
		rule, err := rec.ToRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

const selectRule = `
	SELECT id, name, rule_type, priority, is_active, parameters,
		created_at, updated_at
	FROM scheduling_rules`

// scanRule 扫描单行规则记录
func scanRule(row Scanner) (*RuleRecord, error) {
	rec := &RuleRecord{}
	var params []byte

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.RuleType, &rec.Priority, &rec.IsActive, &params,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &rec.Parameters); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
