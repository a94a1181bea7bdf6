// Package audit provides durable sinks for the service audit trail: an
// append-only SQLite table and a blob-store archiver.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"salescore/internal/core"
	"salescore/pkg/domain"
)

// SQLiteRecorder appends audit entries to an audit_log table. Rows are never
// updated or deleted. Append failures are logged, not raised: the mutation
// that produced the entry has already committed.
type SQLiteRecorder struct {
	db     *sql.DB
	logger core.Logger
}

// NewSQLiteRecorder opens (or creates) the audit database at path. A nil
// logger drops append failures silently.
func NewSQLiteRecorder(path string, logger core.Logger) (*SQLiteRecorder, error) {
	if path == "" {
		path = "salescore_audit.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id TEXT PRIMARY KEY,
		ts TEXT NOT NULL,
		operation TEXT NOT NULL,
		tag TEXT NOT NULL,
		entity TEXT NOT NULL,
		action TEXT NOT NULL,
		entity_id INTEGER NOT NULL,
		username TEXT NOT NULL,
		remote_addr TEXT,
		remote_host TEXT,
		details TEXT,
		status TEXT NOT NULL,
		duration_ms REAL NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create audit_log table: %w", err)
	}
	return &SQLiteRecorder{db: db, logger: logger}, nil
}

// Record implements core.AuditRecorder.
func (r *SQLiteRecorder) Record(ctx context.Context, entry core.AuditEntry) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log(id, ts, operation, tag, entity, action, entity_id, username, remote_addr, remote_host, details, status, duration_ms)
		 VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		entry.ID,
		entry.Timestamp.UTC().Format(time.RFC3339Nano),
		entry.Operation,
		string(entry.Tag),
		string(entry.Entity),
		string(entry.Action),
		entry.EntityID,
		entry.Username,
		entry.RemoteAddr,
		entry.RemoteHost,
		entry.Details,
		string(entry.Status),
		float64(entry.Duration)/float64(time.Millisecond),
	)
	if err != nil && r.logger != nil {
		r.logger.Error("audit append failed", "operation", entry.Operation, "entity", string(entry.Entity), "error", err.Error())
	}
}

// Entries returns all recorded entries ordered by timestamp then id.
func (r *SQLiteRecorder) Entries(ctx context.Context) ([]core.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, ts, operation, tag, entity, action, entity_id, username, remote_addr, remote_host, details, status, duration_ms
		 FROM audit_log ORDER BY ts, id`)
	if err != nil {
		return nil, fmt.Errorf("select audit_log: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []core.AuditEntry
	for rows.Next() {
		var entry core.AuditEntry
		var ts, tag, entity, action, status string
		var durationMS float64
		if err := rows.Scan(&entry.ID, &ts, &entry.Operation, &tag, &entity, &action, &entry.EntityID,
			&entry.Username, &entry.RemoteAddr, &entry.RemoteHost, &entry.Details, &status, &durationMS); err != nil {
			return nil, fmt.Errorf("scan audit_log: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse audit timestamp: %w", err)
		}
		entry.Timestamp = parsed
		entry.Tag = domain.OperationType(tag)
		entry.Entity = core.EntityType(entity)
		entry.Action = core.Action(action)
		entry.Status = core.AuditStatus(status)
		entry.Duration = time.Duration(durationMS * float64(time.Millisecond))
		out = append(out, entry)
	}
	return out, rows.Err()
}

// DB exposes the underlying handle for integration testing hooks.
func (r *SQLiteRecorder) DB() *sql.DB { return r.db }

// Close releases the database handle.
func (r *SQLiteRecorder) Close() error { return r.db.Close() }
