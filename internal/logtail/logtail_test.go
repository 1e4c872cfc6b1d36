package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

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
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestFormat_ZerologLine(t *testing.T) {
	oldLocal := time.Local
	time.Local = time.FixedZone("TestLocal", -5*60*60)
	defer func() {
		time.Local = oldLocal
	}()

	line := `{"level":"warn","component":"browse","request_id":"abc","page":2,"error":"boom","time":"2026-01-02T10:11:12Z","message":" list fetch failed "}`
	evt, ok := ParseLine(line)
	if !ok {
		t.Fatalf("ParseLine(%q) ok = false", line)
	}
	got := Format(evt)

	if want := "2026-01-02 05:11:12 WARN [browse] – list fetch failed"; !strings.HasPrefix(got, want) {
		t.Fatalf("Format = %q, want prefix %q", got, want)
	}
	if !strings.Contains(got, "\n    - error: boom") {
		t.Fatalf("Format missing error detail: %q", got)
	}
	if !strings.Contains(got, "\n    - page: 2\n    - request_id: abc") {
		t.Fatalf("Format details not sorted: %q", got)
	}
}

func TestFormatLines_PassesThroughPlainText(t *testing.T) {
	got := FormatLines([]string{"not json", `{"level":"info","message":"ok"}`})
	want := []string{"not json", "INFO – ok"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatLines = %q, want %q", got, want)
	}
	if FormatLines(nil) != nil {
		t.Fatalf("FormatLines(nil) should be nil")
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		level string
		min   zerolog.Level
		want  bool
	}{
		{"debug", zerolog.InfoLevel, false},
		{"info", zerolog.InfoLevel, true},
		{"error", zerolog.WarnLevel, true},
		{"", zerolog.ErrorLevel, true},
		{"bogus", zerolog.ErrorLevel, true},
	}
	for _, tt := range tests {
		if got := AtLeast(Event{Level: tt.level}, tt.min); got != tt.want {
			t.Errorf("AtLeast(%q, %v) = %v, want %v", tt.level, tt.min, got, tt.want)
		}
	}
}
