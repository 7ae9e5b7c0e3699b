package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntryError reports whether err is a MySQL/MariaDB unique key
// violation. The favorites insert treats it as "already favorited".
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
