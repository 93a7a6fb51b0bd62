package db

import (
	"github.com/jmoiron/sqlx"
)

// KDb wraps the sqlx handle so repositories depend on one type.
type KDb struct {
	*sqlx.DB
}

func NewKDb(driverName, dataSourceUrl string) (*KDb, error) {
	db, err := sqlx.Connect(driverName, dataSourceUrl)
	if err != nil {
		return nil, err
	}
	return &KDb{db}, nil
}

// Migrate applies the schema. Statements are idempotent, so running it on
// every startup is safe.
func (kdb *KDb) Migrate() error {
	_, err := kdb.Exec(Schema)
	return err
}
