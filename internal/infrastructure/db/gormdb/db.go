package gormdb

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to Postgres when a DSN is given, otherwise falls back to a
// local SQLite file, and migrates both tables.
func Open(postgresDSN, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if postgresDSN != "" {
		dialector = postgres.Open(postgresDSN)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}, &TaskModel{}); err != nil {
		return nil, err
	}
	return db, nil
}
