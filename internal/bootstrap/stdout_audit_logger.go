package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/contextutil"
)

// StdoutAuditLogger menulis audit event ke logger global. Cukup untuk
// deployment satu node; implementasi lain bisa menulis ke tabel audit.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
