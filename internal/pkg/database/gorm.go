package database

import (
	"StorySphere/internal/api/config"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/logger"
	"fmt"
	log "log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:                                   logger.NewGormLogger(),
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// Models 全部关系表模型，迁移与测试共用
func Models() []any {
	return []any{
		&model.User{},
		&model.UserFollow{},
		&model.Story{},
		&model.Chapter{},
		&model.Like{},
		&model.Comment{},
		&model.Bookmark{},
	}
}

// Migrate 建表/补齐字段，不建立外键约束，删除故事不级联
func Migrate(db *gorm.DB) error {
	return db.Migrator().AutoMigrate(Models()...)
}
