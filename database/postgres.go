package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type DBClient struct {
	DB  *sql.DB
	log logrus.FieldLogger
}

func NewPostgresDB(dbURL string, log logrus.FieldLogger) (*DBClient, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("postgres connection string is empty")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database (ping failed): %w", err)
	}

	log.Info("Successfully connected to PostgreSQL database")
	return &DBClient{DB: db, log: log}, nil
}

func (c *DBClient) Close() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.log.WithError(err).Error("Error closing database connection")
		} else {
			c.log.Info("PostgreSQL database connection closed")
		}
	}
}
