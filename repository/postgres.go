package repository

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/mapleleafu/gamenight-bot/config"
)

// ConnectToPostgreSQL opens the identity database and verifies the
// connection with a ping.
func ConnectToPostgreSQL(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

// InitSchema creates the users table. Safe to run more than once. The SQL
// here (and in users.go) sticks to the dialect both PostgreSQL and SQLite
// accept, so tests can run against an in-memory database.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		gl_name TEXT UNIQUE
	)`)
	return err
}
