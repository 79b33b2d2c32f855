package database

import (
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kudosboard/kudos-board/internal/config"
)

// Open connects to the configured database and applies the pool settings.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialect(cfg)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.LogSQL {
		level = gormlogger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	db.Exec("SET NAMES utf8mb4")
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return db, nil
}

func dialect(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "kudos.db"
		}
		return sqlite.Open(path + "?_foreign_keys=on"), nil
	case "mysql", "":
		mysqlCfg, err := mysqldriver.ParseDSN(cfg.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("parse DSN: %w", err)
		}
		mysqlCfg.ParseTime = true
		if mysqlCfg.Loc == nil {
			mysqlCfg.Loc = time.UTC
		}
		return mysql.Open(mysqlCfg.FormatDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
