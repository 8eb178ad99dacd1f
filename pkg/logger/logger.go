package logger

import (
    "sync"

    "go.uber.org/zap"
)

var (
    log  = zap.NewNop()
    once sync.Once
)

// Init 按环境初始化全局 logger：dev 用开发配置，其余用生产配置。
func Init(env string) {
    once.Do(func() {
        var l *zap.Logger
        var err error
        if env == "dev" {
            l, err = zap.NewDevelopment()
        } else {
            l, err = zap.NewProduction()
        }
        if err != nil {
            panic(err)
        }
        log = l
    })
}

func L() *zap.Logger { return log }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

func Sync() { _ = log.Sync() }
