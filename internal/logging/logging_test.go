package logging_test

import (
	"testing"

	"github.com/goliatone/go-content-audit/internal/logging"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
)

type stubProvider struct {
	names []string
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return logging.NoOp()
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	t.Parallel()

	logger := logging.ModuleLogger(nil, "audit.report")
	if logger == nil {
		t.Fatal("expected a logger even without a provider")
	}
	// Must not panic.
	logger.Info("noop.sink")
}

func TestModuleLoggerNamespaces(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	logging.ReportLogger(provider)
	logging.MarkdownLogger(provider)

	want := []string{"audit.report", "audit.markdown"}
	if len(provider.names) != len(want) {
		t.Fatalf("expected %d lookups, got %v", len(want), provider.names)
	}
	for i, name := range want {
		if provider.names[i] != name {
			t.Fatalf("lookup %d: expected %q, got %q", i, name, provider.names[i])
		}
	}
}

func TestWithFieldsNoOpPassthrough(t *testing.T) {
	t.Parallel()

	base := logging.NoOp()
	logger := logging.WithFields(base, map[string]any{"operation": "test"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Debug("noop.sink")

	if got := logging.WithFields(base, nil); got != base {
		t.Fatal("expected empty fields to return the logger unchanged")
	}
}
