package journal

// Dialect abstracts the SQL differences between SQLite and PostgreSQL.
// Placeholders are rebound by sqlx, so queries are written with ?.
type Dialect interface {
	// DriverName returns the driver name for sqlx.Open().
	DriverName() string

	// InitStatements returns statements run once after connecting.
	InitStatements() []string

	// PrimaryKey returns the column definition for an auto-increment id.
	PrimaryKey() string

	// SupportsLastInsertID reports whether Result.LastInsertId works.
	// PostgreSQL needs a RETURNING clause instead.
	SupportsLastInsertID() bool
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a Dialect for the given type. Unknown types get SQLite.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}
