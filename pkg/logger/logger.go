package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with checkout-domain helpers
type Logger struct {
	*slog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler is easier to read in development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	once.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithUserID adds user ID to logger context
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("user_id", userID))}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
	)
}

// LogCheckoutStarted logs when a booking session is opened
func (l *Logger) LogCheckoutStarted(ctx context.Context, userID, showtimeID, bookingCode string, seats []string) {
	l.Logger.InfoContext(ctx,
		"Checkout Started",
		slog.String("user_id", userID),
		slog.String("showtime_id", showtimeID),
		slog.String("booking_code", bookingCode),
		slog.Any("seats", seats),
	)
}

// LogCheckoutCompleted logs a committed checkout
func (l *Logger) LogCheckoutCompleted(ctx context.Context, transactionID, bookingCode, userID string, total int64) {
	l.Logger.InfoContext(ctx,
		"Checkout Completed",
		slog.String("transaction_id", transactionID),
		slog.String("booking_code", bookingCode),
		slog.String("user_id", userID),
		slog.Int64("total_payment", total),
	)
}

// LogCheckoutFailed logs a failed checkout attempt with diagnostic fields
func (l *Logger) LogCheckoutFailed(ctx context.Context, userID string, seats []string, total int64, err error) {
	l.Logger.ErrorContext(ctx,
		"Checkout Failed",
		slog.String("user_id", userID),
		slog.Any("seats", seats),
		slog.Int64("total_payment", total),
		slog.String("error", err.Error()),
	)
}

// LogAuthSuccess logs successful authentication
func (l *Logger) LogAuthSuccess(ctx context.Context, userID, method string) {
	l.Logger.InfoContext(ctx,
		"Authentication Success",
		slog.String("user_id", userID),
		slog.String("method", method),
	)
}

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
	)
}
