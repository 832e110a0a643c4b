// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orderdash/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// models lists every table the suite works with.
var models = []any{
	&model.OrderModel{},
	&model.OrderItemModel{},
	&model.ExpenseModel{},
}

// NewDb opens (once) an in-memory SQLite database with the full schema.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open()
	})
	return dbConn
}

func open() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return conn
}

// ClearDb removes every row so scenarios start from an empty store.
func ClearDb(db *gorm.DB) error {
	for _, m := range models {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
