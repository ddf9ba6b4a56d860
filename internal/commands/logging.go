package commands

import (
	"strings"

	"github.com/goliatone/go-content-audit/internal/logging"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
)

const commandModuleRoot = "audit.commands"

// CommandLogger returns a module-scoped logger for command handlers,
// enriched with consistent structured fields so executions can be filtered
// alongside the rest of the audit telemetry.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
