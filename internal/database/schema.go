// Package database 提供数据库连接和管理
package database

import "context"

// schema 建表语句
// 规则参数存 JSONB，由规则工厂在加载时校验解析。
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hire_date DATE NOT NULL,
		shift_preference TEXT NOT NULL DEFAULT 'no_preference',
		fixed_days_off INT[] NOT NULL DEFAULT '{}',
		skills TEXT[] NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_off_requests (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS scheduling_rules (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		rule_type TEXT NOT NULL,
		priority INT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		parameters JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_periods (
		id UUID PRIMARY KEY,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		published_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shift_assignments (
		id UUID PRIMARY KEY,
		schedule_id UUID NOT NULL REFERENCES schedule_periods(id) ON DELETE CASCADE,
		employee_id UUID NOT NULL REFERENCES employees(id),
		date DATE NOT NULL,
		shift_type TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (employee_id, date, shift_type)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_off_employee ON time_off_requests(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_schedule ON shift_assignments(schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_date ON shift_assignments(date)`,
}

// Migrate 初始化数据库结构
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
