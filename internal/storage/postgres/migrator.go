package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// schemaLockID — ключ advisory lock, под которым мигрирует только один процесс.
const schemaLockID = int64(0x77656273686f70)

const schemaHistoryDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

//go:embed sql/migrations/*.sql
var embeddedSchema embed.FS

var schemaFileName = regexp.MustCompile(`^(\d+)_(\w+)\.(up|down)\.sql$`)

// schemaStep — пара скриптов одной версии схемы.
type schemaStep struct {
	version int64
	name    string
	up      string
	down    string
}

func (s schemaStep) String() string {
	return fmt.Sprintf("%04d_%s", s.version, s.name)
}

// MigrationInfo описывает встроенную миграцию.
type MigrationInfo struct {
	Version int64
	Name    string
}

// MigrationState — состояние схемы базы.
type MigrationState struct {
	Version int64
	Applied int
	Pending []MigrationInfo
}

// AvailableMigrations возвращает встроенные миграции по возрастанию версии.
func AvailableMigrations() ([]MigrationInfo, error) {
	steps, err := readSchemaSteps(embeddedSchema)
	if err != nil {
		return nil, err
	}
	return describe(steps), nil
}

// MigrateUp применяет до steps неприменённых миграций; 0 применяет все.
func (s *Store) MigrateUp(ctx context.Context, steps int) error {
	return s.withSchemaLock(ctx, func(conn *sql.Conn, all []schemaStep) error {
		applied, err := appliedVersions(ctx, conn)
		if err != nil {
			return err
		}
		done := 0
		for _, step := range all {
			if steps > 0 && done == steps {
				break
			}
			if _, ok := applied[step.version]; ok {
				continue
			}
			if err := runStep(ctx, conn, step.String()+" up", step.up,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, step.version, step.name); err != nil {
				return err
			}
			done++
		}
		return nil
	})
}

// MigrateDown откатывает steps последних миграций; steps <= 0 откатывает одну.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		steps = 1
	}
	return s.withSchemaLock(ctx, func(conn *sql.Conn, all []schemaStep) error {
		applied, err := appliedVersions(ctx, conn)
		if err != nil {
			return err
		}
		byVersion := make(map[int64]schemaStep, len(all))
		for _, step := range all {
			byVersion[step.version] = step
		}
		for _, version := range newestFirst(applied, steps) {
			step, ok := byVersion[version]
			if !ok {
				return fmt.Errorf("applied migration %d is not embedded in this binary", version)
			}
			if err := runStep(ctx, conn, step.String()+" down", step.down,
				`DELETE FROM schema_migrations WHERE version = $1`, step.version); err != nil {
				return err
			}
		}
		return nil
	})
}

// MigrationStatus возвращает текущую версию, число применённых и список ожидающих миграций.
func (s *Store) MigrationStatus(ctx context.Context) (MigrationState, error) {
	if s == nil || s.db == nil {
		return MigrationState{}, errStoreClosed
	}
	all, err := readSchemaSteps(embeddedSchema)
	if err != nil {
		return MigrationState{}, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	conn, err := s.db.Conn(queryCtx)
	if err != nil {
		return MigrationState{}, fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(queryCtx, schemaHistoryDDL); err != nil {
		return MigrationState{}, fmt.Errorf("ensure schema_migrations: %w", err)
	}
	applied, err := appliedVersions(queryCtx, conn)
	if err != nil {
		return MigrationState{}, err
	}

	state := MigrationState{Applied: len(applied)}
	for version := range applied {
		if version > state.Version {
			state.Version = version
		}
	}
	for _, step := range all {
		if _, ok := applied[step.version]; !ok {
			state.Pending = append(state.Pending, MigrationInfo{Version: step.version, Name: step.name})
		}
	}
	return state, nil
}

func (s *Store) withSchemaLock(ctx context.Context, fn func(conn *sql.Conn, all []schemaStep) error) error {
	if s == nil || s.db == nil {
		return errStoreClosed
	}
	all, err := readSchemaSteps(embeddedSchema)
	if err != nil {
		return err
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire db connection: %w", err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := conn.ExecContext(lockCtx, `SELECT pg_advisory_lock($1)`, schemaLockID); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, schemaLockID)
	}()

	if _, err := conn.ExecContext(ctx, schemaHistoryDDL); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	return fn(conn, all)
}

// runStep выполняет скрипт и запись в schema_migrations одной транзакцией.
func runStep(ctx context.Context, conn *sql.Conn, label, script, history string, args ...any) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration %s: begin: %w", label, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("migration %s: %w", label, err)
	}
	if _, err = tx.ExecContext(ctx, history, args...); err != nil {
		return fmt.Errorf("migration %s: record history: %w", label, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("migration %s: commit: %w", label, err)
	}
	return nil
}

func appliedVersions(ctx context.Context, conn *sql.Conn) (map[int64]struct{}, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int64]struct{})
	for rows.Next() {
		var version int64
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[version] = struct{}{}
	}
	return applied, rows.Err()
}

func newestFirst(applied map[int64]struct{}, limit int) []int64 {
	versions := make([]int64, 0, len(applied))
	for version := range applied {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] > versions[j] })
	if len(versions) > limit {
		versions = versions[:limit]
	}
	return versions
}

func describe(steps []schemaStep) []MigrationInfo {
	out := make([]MigrationInfo, len(steps))
	for i, step := range steps {
		out[i] = MigrationInfo{Version: step.version, Name: step.name}
	}
	return out
}

// readSchemaSteps собирает пары up/down из sql/migrations и упорядочивает их по версии.
func readSchemaSteps(fsys fs.FS) ([]schemaStep, error) {
	files, err := fs.Glob(fsys, "sql/migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no migration files found")
	}

	byVersion := make(map[int64]*schemaStep)
	for _, file := range files {
		base := path.Base(file)
		m := schemaFileName.FindStringSubmatch(base)
		if m == nil {
			return nil, fmt.Errorf("invalid migration file name: %s", base)
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration version in %s: %w", base, err)
		}
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		script := strings.TrimSpace(string(raw))
		if script == "" {
			return nil, fmt.Errorf("migration file is empty: %s", base)
		}

		step := byVersion[version]
		if step == nil {
			step = &schemaStep{version: version, name: m[2]}
			byVersion[version] = step
		}
		if step.name != m[2] {
			return nil, fmt.Errorf("migration name mismatch for version %d: %s vs %s", version, step.name, m[2])
		}
		target := &step.up
		if m[3] == "down" {
			target = &step.down
		}
		if *target != "" {
			return nil, fmt.Errorf("duplicate %s script for migration %d", m[3], version)
		}
		*target = script
	}

	steps := make([]schemaStep, 0, len(byVersion))
	for _, step := range byVersion {
		if step.up == "" || step.down == "" {
			return nil, fmt.Errorf("migration %s must have both up and down files", step)
		}
		steps = append(steps, *step)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	return steps, nil
}
