// Package database connects the API to Postgres and Redis.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qmshan/blogapi/api/anime"
	"github.com/qmshan/blogapi/api/comment"
	"github.com/qmshan/blogapi/api/post"
	"github.com/qmshan/blogapi/api/sso"
	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/config"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

// ConnectPostgres connects to a Postgres database and returns a GORM database object
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing Postgres")

	// Set up GORM logger
	var logLevel logger.LogLevel
	switch cfg.PostgresLogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	// Open database connection
	db, err := gorm.Open(postgres.Open(cfg.PostgresDsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}
	zaplogger.Info("  * connected")
	zaplogger.Info("  * checking tables")

	// AutoMigrate will create tables and add/modify columns
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %v", err)
	}

	// Verify that the tables are created
	if err := verifyTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Session{},
		&sso.AuthSession{},
		&post.Post{},
		&comment.Comment{},
		&anime.Entry{},
	)
}

func verifyTables(db *gorm.DB) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{user.UsersTableName, &user.User{}},
		{user.SessionsTableName, &user.Session{}},
		{sso.AuthSessionsTableName, &sso.AuthSession{}},
		{post.PostsTableName, &post.Post{}},
		{comment.CommentsTableName, &comment.Comment{}},
		{anime.AnimeListTableName, &anime.Entry{}},
	}

	for _, table := range tables {
		if db.Migrator().HasTable(table.model) {
			zaplogger.Info("    - " + table.name + " ✔")
		} else {
			return fmt.Errorf("failed to create table: %s", table.name)
		}
	}

	return nil
}
