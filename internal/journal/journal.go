// Package journal keeps a transcript of the games played: one row per
// session and one per executed command. It is write-mostly; nothing here is
// used to restore a game.
package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/lawnchairsociety/adventure/internal/logger"
)

// Journal wraps the database connection.
type Journal struct {
	db      *sqlx.DB
	dialect Dialect
}

// SessionRecord is one game as stored in the journal.
type SessionRecord struct {
	ID        int64        `db:"id"`
	World     string       `db:"world"`
	Remote    string       `db:"remote"`
	StartedAt time.Time    `db:"started_at"`
	EndedAt   sql.NullTime `db:"ended_at"`
	Reason    string       `db:"reason"`
	Summary   string       `db:"summary"` // JSON, empty until the game ends
}

// TurnRecord is one executed command.
type TurnRecord struct {
	ID        int64     `db:"id"`
	SessionID int64     `db:"session_id"`
	Number    int       `db:"number"`
	Room      int       `db:"room"`
	Input     string    `db:"input"`
	Output    string    `db:"output"`
	Forced    bool      `db:"forced"`
	At        time.Time `db:"at"`
}

// Open connects to the journal database and creates the schema if needed.
func Open(cfg Config) (*Journal, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	dsn := cfg.DSN
	if _, ok := dialect.(*SQLiteDialect); ok {
		if cfg.SQLitePath == "" {
			return nil, errors.New("journal: sqlite path is empty")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create journal directory")
		}
		dsn = cfg.SQLitePath
	}

	db, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal")
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "failed to run %q", stmt)
		}
	}

	j := &Journal{db: db, dialect: dialect}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	logger.Info("Journal opened", "driver", dialect.DriverName())
	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// migrate creates the schema if it doesn't exist.
func (j *Journal) migrate() error {
	pk := j.dialect.PrimaryKey()
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id ` + pk + `,
			world TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			started_at TIMESTAMP NOT NULL,
			ended_at TIMESTAMP,
			reason TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS turns (
			id ` + pk + `,
			session_id BIGINT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			number INTEGER NOT NULL,
			room INTEGER NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			forced BOOLEAN NOT NULL DEFAULT FALSE,
			at TIMESTAMP NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_turns_session_id ON turns(session_id)`,
	}

	for _, m := range migrations {
		if _, err := j.db.Exec(m); err != nil {
			return errors.Wrapf(err, "migration failed\nSQL: %s", m)
		}
	}
	return nil
}

// insert runs an INSERT and returns the new row's id
func (j *Journal) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if !j.dialect.SupportsLastInsertID() {
		var id int64
		err := j.db.QueryRowxContext(ctx, j.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := j.db.ExecContext(ctx, j.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Sessions returns the most recent sessions, newest first.
func (j *Journal) Sessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	var sessions []SessionRecord
	err := j.db.SelectContext(ctx, &sessions, j.db.Rebind(
		`SELECT id, world, remote, started_at, ended_at, reason, summary
		FROM sessions ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing sessions")
	}
	return sessions, nil
}

// Session returns one session by id.
func (j *Journal) Session(ctx context.Context, id int64) (*SessionRecord, error) {
	var s SessionRecord
	err := j.db.GetContext(ctx, &s, j.db.Rebind(
		`SELECT id, world, remote, started_at, ended_at, reason, summary
		FROM sessions WHERE id = ?`), id)
	if err != nil {
		return nil, errors.Wrapf(err, "session %d", id)
	}
	return &s, nil
}

// Turns returns a session's commands in the order they ran.
func (j *Journal) Turns(ctx context.Context, sessionID int64) ([]TurnRecord, error) {
	var turns []TurnRecord
	err := j.db.SelectContext(ctx, &turns, j.db.Rebind(
		`SELECT id, session_id, number, room, input, output, forced, at
		FROM turns WHERE session_id = ? ORDER BY number`), sessionID)
	if err != nil {
		return nil, errors.Wrapf(err, "turns for session %d", sessionID)
	}
	return turns, nil
}
