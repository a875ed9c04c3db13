package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const (
	errNumDuplicateEntry = 1062
	errNumLockDeadlock   = 1213
)

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errNumDuplicateEntry
}

func isDeadlock(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errNumLockDeadlock
}
