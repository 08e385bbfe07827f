package sqlbuilder

import "github.com/Masterminds/squirrel"

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New returns a squirrel statement builder with the placeholder format of the driver
func New(driver string) squirrel.StatementBuilderType {
	if driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// IsSupported reports whether driver is one of the supported drivers
func IsSupported(driver string) bool {
	return driver == DriverPostgres || driver == DriverSQLite
}
