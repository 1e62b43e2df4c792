package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var Audit *sqlx.DB

// InitAuditDB opens the dedicated append-only connection used by the audit
// sink. It is kept separate from the GORM connection so audit writes never
// share a transaction with the primary mutation.
func InitAuditDB(dsn string) error {
	var err error

	for i := 0; i < 10; i++ {
		Audit, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
