package mysql

import (
	"database/sql"

	"bitbucket.org/yellowmessenger/chime-sma-responder/configmanager"

	_ "github.com/go-sql-driver/mysql"
)

var dbConn *sql.DB

// Init initializes the MySQL connection
func Init() error {
	var err error
	dsn := configmanager.ConfStore.MySQLUser + ":" + configmanager.ConfStore.MySQLPassword + "@tcp(" + configmanager.ConfStore.MySQLHost + ")/" + configmanager.ConfStore.MySQLDB
	dbConn, err = sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	dbConn.SetMaxOpenConns(20)
	return nil
}

// Initialized reports whether the audit database is available
func Initialized() bool {
	return dbConn != nil
}
