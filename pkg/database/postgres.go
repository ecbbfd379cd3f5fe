package database

import (
	"fmt"
	"log"
	"os"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	embeddedDataPath = "./db_data"
	embeddedPort     = 5433
)

// DB wraps gorm.DB and holds a reference to the embedded server if one was
// started, so the caller can stop it on shutdown.
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
}

// Stop shuts down the embedded server if this connection started one.
func (d *DB) Stop() error {
	if d.embedded != nil {
		return d.embedded.Stop()
	}
	return nil
}

// Connect opens a PostgreSQL connection. With DATABASE_URL (or DB_* vars)
// set it connects externally; otherwise it boots an embedded Postgres under
// ./db_data for development.
func Connect() (*DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && os.Getenv("DB_HOST") != "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}

	var embedded *embeddedpostgres.EmbeddedPostgres
	if dsn == "" {
		log.Println("No DATABASE_URL configured, starting embedded PostgreSQL")
		embedded = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
			Port(embeddedPort).
			DataPath(embeddedDataPath).
			Username("postgres").
			Password("postgres").
			Database("warehouse"))
		if err := embedded.Start(); err != nil {
			return nil, fmt.Errorf("failed to start embedded postgres: %w", err)
		}
		dsn = fmt.Sprintf("host=localhost user=postgres password=postgres dbname=warehouse port=%d sslmode=disable", embeddedPort)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:      newLogger,
		PrepareStmt: false,
	})
	if err != nil {
		if embedded != nil {
			embedded.Stop()
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pooling
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return &DB{DB: db, embedded: embedded}, nil
}
