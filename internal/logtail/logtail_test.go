package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"warn","ts":"2026-10-19T12:00:05.123Z","logger":"deeplink","caller":"deeplink/handler.go:44","msg":"share link rejected","reason":"unknown_kind","length":42,"kind":"cheese"}`
	e := Parse(line)

	if e.Raw != "" {
		t.Fatalf("Raw = %q, want parsed entry", e.Raw)
	}
	if e.Level != zapcore.WarnLevel || e.Logger != "deeplink" || e.Msg != "share link rejected" {
		t.Fatalf("Parse = %#v", e)
	}
	want := time.Date(2026, 10, 19, 12, 0, 5, 123e6, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	fields := []Field{{"kind", "cheese"}, {"length", "42"}, {"reason", "unknown_kind"}}
	if !reflect.DeepEqual(e.Fields, fields) {
		t.Fatalf("Fields = %#v, want %#v", e.Fields, fields)
	}

	got := e.Time.UTC().Format("2006-01-02 15:04:05")
	if got != "2026-10-19 12:00:05" {
		t.Fatalf("time format = %q", got)
	}
}

func TestEntry_String(t *testing.T) {
	e := Entry{
		Level:  zapcore.ErrorLevel,
		Logger: "refresh",
		Msg:    "list failed",
		Fields: []Field{{"error", formatValue("database is locked")}, {"failures", "3"}},
	}
	want := `ERROR [refresh] list failed error="database is locked" failures=3`
	if got := e.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	info := Entry{Level: zapcore.InfoLevel, Msg: "seeded"}
	if got := info.String(); got != "INFO  seeded" {
		t.Fatalf("String() = %q, want %q", got, "INFO  seeded")
	}
}

func TestParse_NonJSONIsRaw(t *testing.T) {
	for _, line := range []string{"plain text", "[1,2]", "{broken"} {
		e := Parse(line)
		if e.Raw != line || e.String() != line {
			t.Fatalf("Parse(%q) = %#v, want raw passthrough", line, e)
		}
	}
}

func TestTailAndAtLeast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memoix.log")
	lines := []string{
		`{"level":"info","msg":"one"}`,
		``,
		`{"level":"error","msg":"two","err":{"code":5}}`,
		`{"level":"debug","msg":"three"}`,
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Tail(path, 0)
	if err != nil {
		t.Fatalf("Tail error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Tail returned %d entries, want 3", len(entries))
	}
	if entries[1].Fields[0].Value != `{"code":5}` {
		t.Fatalf("object field = %q", entries[1].Fields[0].Value)
	}

	warn := AtLeast(entries, zapcore.WarnLevel)
	if len(warn) != 1 || warn[0].Msg != "two" {
		t.Fatalf("AtLeast(warn) = %#v", warn)
	}
}
