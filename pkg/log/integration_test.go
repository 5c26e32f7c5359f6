package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	scierrors "github.com/YuminosukeSato/scinum/pkg/errors"
)

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationIntegrate)
	testLogger.Warn("warning message", BoundedKey, 3)
	testLogger.Error("error message", fmt.Errorf("boom"), ToleranceKey, 1e-10)

	if buffer.Len() == 0 {
		t.Fatal("Expected log output, got empty buffer")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "boom") {
		t.Error("leading error should be logged under the error key")
	}
	if !testLogger.ContainsField(ToleranceKey, 1e-10) {
		t.Error("fields after a leading error should still be logged")
	}
}

func TestTestLoggerLevelsAndWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelWarn)

	child := testLogger.With(ComponentKey, "integrate", AlgorithmKey, AlgorithmAdaptiveSimpson)
	child.Debug("dropped")
	child.Info("dropped too")
	child.Warn("kept", DepthKey, 50)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0][ComponentKey] != "integrate" {
		t.Errorf("component context missing: %v", entries[0])
	}
	if entries[0]["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entries[0]["level"])
	}

	ctx := context.Background()
	if testLogger.Enabled(ctx, LevelInfo) {
		t.Error("INFO should be disabled at WARN level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("ERROR should be enabled at WARN level")
	}

	testLogger.Clear()
	if testLogger.ContainsMessage("kept") {
		t.Error("Clear should drop captured output")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("not emitted")
	logger.With(ComponentKey, "optimize").Info("minimized", IterationKey, 17, ConvergedKey, true)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["message"] != "minimized" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[ComponentKey] != "optimize" {
		t.Errorf("component = %v", entry[ComponentKey])
	}
	if entry[IterationKey] != 17.0 {
		t.Errorf("iteration = %v", entry[IterationKey])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("DEBUG should be disabled at INFO level")
	}
	if !logger.Enabled(ctx, LevelWarn) {
		t.Error("WARN should be enabled at INFO level")
	}
}

func TestZerologLoggerErrorStack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := scierrors.NewValidationError("tolerance", "must be positive", 0.0)
	logger.Error("integration failed", err, OperationKey, OperationQuad)

	var entry map[string]interface{}
	if e := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); e != nil {
		t.Fatalf("invalid JSON: %v", e)
	}
	if !strings.Contains(fmt.Sprint(entry["error"]), "tolerance") {
		t.Errorf("error field = %v", entry["error"])
	}
	if st, _ := entry[StacktraceAttrKey].(string); !strings.Contains(st, "integration_test.go") {
		t.Errorf("stacktrace should point at the caller, got %q", st)
	}
}

func TestWarningsRouteToProvider(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LevelWarn)
	defer SetOutput(&bytes.Buffer{}, LevelWarn)

	scierrors.Warn(scierrors.NewConvergenceWarning("AdaptiveSimpson", 50, "depth guard hit"))

	out := buf.String()
	if !strings.Contains(out, "depth guard hit") {
		t.Fatalf("warning not logged: %q", out)
	}
	if !strings.Contains(out, `"algorithm":"AdaptiveSimpson"`) {
		t.Errorf("warning should be logged as a structured object: %q", out)
	}

	provider, captured := NewTestLoggerProvider(LevelDebug)
	prev := SetProvider(provider)
	defer SetProvider(prev)

	scierrors.Warn(scierrors.NewConvergenceWarning("GoldenSection", 500, ""))
	if !captured.ContainsMessage("GoldenSection failed to converge") {
		t.Error("warning should reach the test provider")
	}
	if !captured.ContainsField(ErrorTypeKey, "*errors.ConvergenceWarning") {
		t.Error("warning type should be recorded")
	}

	GetLoggerWithName("integrate").Info("named")
	if !captured.ContainsField(ComponentKey, "integrate") {
		t.Error("GetLoggerWithName should tag the component")
	}
}

func TestSetupLoggerStacktrace(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupLoggerTo(&buf, "debug"); err != nil {
		t.Fatal(err)
	}
	defer slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	slog.Error("wrapped failure", ErrAttr(errors.Wrap(errors.New("inner"), "outer")))

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["severity"] != "ERROR" {
		t.Errorf("severity = %v", entry["severity"])
	}
	if entry["message"] != "wrapped failure" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Error("Expected stacktrace attribute")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if err := SetupLogger("loud"); err == nil {
		t.Error("SetupLogger should reject unknown levels")
	}
	if LevelWarn.String() != "WARN" || Level(99).String() != "UNKNOWN" {
		t.Error("Level.String mismatch")
	}
}
