package journal

// PostgresDialect implements Dialect for the lib/pq driver.
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// InitStatements returns nothing; foreign keys are always enforced.
func (d *PostgresDialect) InitStatements() []string {
	return nil
}

func (d *PostgresDialect) PrimaryKey() string {
	return "BIGSERIAL PRIMARY KEY"
}

func (d *PostgresDialect) SupportsLastInsertID() bool {
	return false
}
