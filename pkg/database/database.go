package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/gin-blog/config"
    "github.com/d60-Lab/gin-blog/internal/model"
)

// InitDB 打开数据库连接并迁移表结构。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    default:
        dialector = sqlite.Open(cfg.Database.DSN)
    }

    logMode := gormlogger.Silent
    if cfg.Env == "dev" {
        logMode = gormlogger.Warn
    }

    db, err := gorm.Open(dialector, &gorm.Config{
        Logger:         gormlogger.Default.LogMode(logMode),
        TranslateError: true,
    })
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }

    if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
        return nil, fmt.Errorf("auto migrate: %w", err)
    }
    return db, nil
}
