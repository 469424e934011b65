package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns db scoped to ctx. When tx is non-nil every statement issued
// through the returned handle runs inside that transaction.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	conn := db.WithContext(ctx)
	if tx != nil {
		conn.Statement.ConnPool = tx
	}
	return conn
}
