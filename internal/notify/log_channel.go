package notify

import (
	"context"

	"github.com/pensionbase/bankcore/pkg/logger"
)

// LogChannel is the always-on channel backing the structured log stream.
type LogChannel struct {
	logger *logger.Logger
}

func NewLogChannel(log *logger.Logger) *LogChannel {
	return &LogChannel{logger: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Notify(ctx context.Context, severity Severity, message string) error {
	if severity == SeverityAlert {
		c.logger.Warn(ctx, message, "severity", severity)
		return nil
	}
	c.logger.Info(ctx, message, "severity", severity)
	return nil
}
