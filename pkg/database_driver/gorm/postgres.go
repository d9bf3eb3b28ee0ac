package gorm

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Gorm   *gorm.DB
	Driver string
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(host, port, username, pass, dbname string, sslmode bool) (*DB, error) {
	var connectionStr string

	if host == "" && port == "" && dbname == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	if sslmode {
		connectionStr = fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=require connect_timeout=5", host, username, pass, dbname, port)
	} else {
		connectionStr = fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=disable connect_timeout=5", host, username, pass, dbname, port)
	}

	pg, err := gorm.Open(postgres.Open(connectionStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Infof("Connected to postgres at %s:%s/%s", host, port, dbname)
	return &DB{Gorm: pg, Driver: "postgres"}, nil
}

// Ping checks the connection is alive
func (d *DB) Ping() error {
	if d == nil || d.Gorm == nil {
		return errors.New("database not connected")
	}
	sqlDb, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDb.Ping()
}

// Disconnect func
func Disconnect(db *DB) {
	if db == nil || db.Gorm == nil {
		return
	}
	sqlDb, err := db.Gorm.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err = sqlDb.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Printf("Connection with %s has closed", db.Driver)
}
