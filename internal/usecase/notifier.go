package usecase

import (
	"context"

	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
)

type logNotifier struct{}

// NewLogNotifier records user-facing notices in the service log.
// The notice itself reaches the visitor through the session snapshot.
func NewLogNotifier() domain.Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, message string) {
	logger.Log.InfoContext(ctx, "user notice", "message", message)
}
