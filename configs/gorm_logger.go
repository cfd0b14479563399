package configs

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// gormLogger sends gorm's output to logrus at matching levels: failed
// statements at error, slow ones at warn.
type gormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger() logger.Interface {
	return &gormLogger{level: logger.Warn, slowThreshold: 200 * time.Millisecond}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *gormLogger) entry(ctx context.Context) *log.Entry {
	return log.WithContext(ctx).WithFields(log.Fields{
		"component": "gorm",
		"source":    utils.FileWithLineNum(),
	})
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.entry(ctx).Infof(msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.entry(ctx).Warnf(msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.entry(ctx).Errorf(msg, args...)
	}
}

// Trace skips record-not-found, which callers handle as a normal outcome.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	fields := func() log.Fields {
		sql, rows := fc()
		return log.Fields{"sql": sql, "rows": rows, "elapsed_ms": elapsed.Milliseconds()}
	}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.entry(ctx).WithFields(fields()).WithError(err).Error("sql failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.entry(ctx).WithFields(fields()).Warn("slow sql")
	case l.level >= logger.Info:
		l.entry(ctx).WithFields(fields()).Debug("sql")
	}
}
