package sql

import (
	"fmt"

	_ "github.com/databricks/databricks-sql-go"
	_ "github.com/lib/pq"
	"github.com/snowflakedb/gosnowflake"
)

// Drivers a database profile can select with its driver key. The dashboard
// tables may live in the operational PostgreSQL database or in a warehouse
// replica.
const (
	DriverPostgres   = "postgres"
	DriverSnowflake  = "snowflake"
	DriverDatabricks = "databricks" // token:<pat>@<host>:443/sql/1.0/warehouses/<id>
)

func validateDSN(driver, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("empty %s connection string", driver)
	}
	switch driver {
	case DriverPostgres, DriverDatabricks:
		return nil
	case DriverSnowflake:
		if _, err := gosnowflake.ParseDSN(dsn); err != nil {
			return fmt.Errorf("invalid snowflake connection string: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}
