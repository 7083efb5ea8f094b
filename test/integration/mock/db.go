package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Table names a gorm model under the table name used by the feature files.
type Table struct {
	Name  string
	Model any
}

// Db is a shared in-memory sqlite database. It stands in for both the account
// database and the local document store, so every tier lands in the same tables.
type Db struct {
	DbConn *gorm.DB
	tables []Table
}

func NewDb(tables ...Table) *Db {
	// A single connection keeps the shared in-memory database alive between queries.
	conn, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic("failed to open sqlite: " + err.Error())
	}
	conn.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := make([]any, 0, len(tables))
	for _, table := range tables {
		models = append(models, table.Model)
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn, tables: tables}
}

// ClearDB deletes every row, children before parents, keeping the schema.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table.Model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table.Name, err)
		}
	}
	return nil
}

func (d *Db) GetModel(name string) (any, bool) {
	for _, table := range d.tables {
		if table.Name == name {
			return table.Model, true
		}
	}
	return nil, false
}
