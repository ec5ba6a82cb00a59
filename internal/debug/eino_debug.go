// Package debug exposes the eino visual debugging plugin behind a config
// flag, for inspecting team graph runs during development.
package debug

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/devops"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
)

// InitIfEnabled starts the eino devops debug server when EINO_DEBUG is set.
// It is a no-op otherwise.
func InitIfEnabled(ctx context.Context, cfg *config.Config) error {
	if !cfg.EinoDebugEnabled {
		return nil
	}

	if err := devops.Init(ctx); err != nil {
		return fmt.Errorf("init eino debug plugin: %w", err)
	}

	logger.Info("eino debug server initialized", map[string]interface{}{
		"url": fmt.Sprintf("http://localhost:%d", cfg.EinoDebugPort),
	})
	return nil
}
