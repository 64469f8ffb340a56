package zlog

import (
	"os"
	"path/filepath"
	"sync"

	"LiveDesk/internal/config"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

func get() *zap.Logger {
	once.Do(func() {
		conf := config.GetConfig()
		logPath := conf.LogConfig.LogPath
		if logPath == "" {
			logPath = filepath.Join(os.TempDir(), "livedesk.log")
		}

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewTee(
			zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, zapcore.InfoLevel),
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), zapcore.InfoLevel),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	})
	return logger
}

func Debug(msg string) { get().Debug(msg) }
func Info(msg string)  { get().Info(msg) }
func Warn(msg string)  { get().Warn(msg) }
func Error(msg string) { get().Error(msg) }
func Fatal(msg string) { get().Fatal(msg) }
