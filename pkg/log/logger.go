package log

import (
	"Noted/config"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const projectName = "Noted"

var L *zap.Logger

func init() {
	L = newLogger(zapcore.AddSync(os.Stdout), zap.InfoLevel)
}

// Setup rebuilds L from config. Safe to call once at startup before
// any goroutine logs.
func Setup(conf *config.Log) {
	level := zap.InfoLevel
	if conf.Level != "" {
		if lvl, err := zapcore.ParseLevel(conf.Level); err == nil {
			level = lvl
		}
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if conf.File != "" {
		if err := os.MkdirAll(filepath.Dir(conf.File), 0o755); err != nil {
			L.Warn("create log dir", zap.Error(err))
		} else {
			sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
				Filename:   conf.File,
				MaxSize:    conf.MaxSize,
				MaxAge:     conf.MaxAge,
				MaxBackups: conf.MaxBackups,
				LocalTime:  true,
				Compress:   true,
			}))
		}
	}

	L = newLogger(zapcore.NewMultiWriteSyncer(sinks...), level)
}

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
