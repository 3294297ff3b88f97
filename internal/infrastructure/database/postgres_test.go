package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfig_DSN(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: 5432, Username: "book", Password: "p@ss/word", DBName: "bookstore"}
	assert.Equal(t, "postgresql://book:p%40ss%2Fword@db:5432/bookstore?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestPostgresDB_UninitializedPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})
	assert.Error(t, db.Ping(t.Context()))
	assert.NoError(t, db.Close())
}
