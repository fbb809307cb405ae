// Package kv is the snapshot store every piece of persisted state goes
// through. It plays the part browser local storage plays for a static
// storefront: string keys mapped to opaque byte snapshots, each written
// whole.
//
// Drivers:
//
//	memory  in-process map (tests, throwaway sessions)
//	file    one file per key under a root directory (default)
//	sql     a gorm-managed table (sqlite, postgres, mysql, sqlserver)
//	redis   one redis string per key
//	s3      one object per key (AWS S3, MinIO, R2)
//	mongo   one document per key
//
// Boot one from configuration:
//
//	store, err := kv.Open(ctx, kv.ConfigFromEnv())
//	defer store.Close()
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/pitstore/config"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a whole-value key/value snapshot store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any connection held by the driver.
	Close() error
}

// Config selects and configures a driver.
type Config struct {
	Driver string

	// file
	Path string

	// sql
	DBDriver string
	DSN      string

	// redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// s3
	S3Bucket   string
	S3Region   string
	S3Key      string
	S3Secret   string
	S3Endpoint string

	// mongo
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// ConfigFromEnv reads the driver settings from the config package.
func ConfigFromEnv() Config {
	return Config{
		Driver:          config.StoreDriver(),
		Path:            config.StorePath(),
		DBDriver:        config.DatabaseDriver(),
		DSN:             config.DatabaseDSN(),
		RedisAddr:       config.RedisAddr(),
		RedisPassword:   config.RedisPassword(),
		RedisDB:         config.RedisDB(),
		S3Bucket:        config.S3Bucket(),
		S3Region:        config.S3Region(),
		S3Key:           config.S3Key(),
		S3Secret:        config.S3Secret(),
		S3Endpoint:      config.S3Endpoint(),
		MongoURI:        config.MongoURI(),
		MongoDatabase:   config.MongoDatabase(),
		MongoCollection: config.MongoCollection(),
	}
}

// Open boots the driver named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "file", "":
		return NewFile(cfg.Path)
	case "sql":
		return OpenSQL(cfg.DBDriver, cfg.DSN)
	case "redis":
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "s3":
		return OpenS3(ctx, S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Endpoint: cfg.S3Endpoint,
		})
	case "mongo":
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	default:
		return nil, fmt.Errorf("kv: unsupported STORE_DRIVER %q (supported: memory, file, sql, redis, s3, mongo)", cfg.Driver)
	}
}
