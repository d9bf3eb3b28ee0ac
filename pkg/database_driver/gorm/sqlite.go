package gorm

import (
	"errors"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectToSQLite func - Opens a pure-Go SQLite database, ":memory:" is allowed
func ConnectToSQLite(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; an in-memory database also lives in one connection
	sqlDb.SetMaxOpenConns(1)

	logrus.Infof("Opened sqlite database %s", path)
	return &DB{Gorm: db, Driver: "sqlite"}, nil
}
