package diaglog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewReporter(logger)

	r.Report(diagnostic.Warning(diagnostic.DiscouragedID, "1:2", "use an alias (%s)", "1:2"))
	r.Report(diagnostic.Failure(diagnostic.InvalidID, "", "invalid id %d", 9999))
	r.Report(diagnostic.Diagnostic{Kind: diagnostic.MissingAliases, Severity: diagnostic.SeverityInfo, Message: "fyi"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "WARN", first["level"])
	assert.Equal(t, "use an alias (1:2)", first["msg"])
	assert.Equal(t, "discouraged_id", first["kind"])
	assert.Equal(t, "1:2", first["node"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "ERROR", second["level"])
	assert.NotContains(t, second, "node")

	var third map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, "INFO", third["level"])

	warnings, errors := r.Counts()
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, errors)
}

func TestReporter_NilLoggerUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	NewReporter(nil).Report(diagnostic.Warning(diagnostic.SyntaxError, "a(b", "unbalanced"))

	assert.Contains(t, buf.String(), "kind=syntax_error")
}
