package mysql

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

const driverParamStr string = "?parseTime=true&loc=UTC"

//go:embed schema.sql
var schema string

func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// Migrate creates any missing tables. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}
	return nil
}
