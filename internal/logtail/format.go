package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Event is one decoded JSON log line.
type Event struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Error     string
	Fields    map[string]string
}

// ParseLine decodes a zerolog JSON line. Lines that are not JSON objects are
// returned as a message-only event with ok=false.
func ParseLine(line string) (Event, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Event{Message: line}, false
	}

	evt := Event{Fields: map[string]string{}}
	for key, value := range raw {
		switch key {
		case zerolog.TimestampFieldName:
			if s, ok := value.(string); ok {
				if ts, err := time.Parse(time.RFC3339, s); err == nil {
					evt.Time = ts
				}
			}
		case zerolog.LevelFieldName:
			evt.Level = fmt.Sprint(value)
		case zerolog.MessageFieldName:
			evt.Message = fmt.Sprint(value)
		case zerolog.ErrorFieldName:
			evt.Error = fmt.Sprint(value)
		case "component":
			evt.Component = fmt.Sprint(value)
		default:
			evt.Fields[key] = stringify(value)
		}
	}
	return evt, true
}

// Format renders evt as a header line followed by indented detail lines:
//
//	2026-01-02 15:04:05 INFO [browse] – list fetch complete
//	    - query: luke
func Format(evt Event) string {
	var parts []string
	if !evt.Time.IsZero() {
		parts = append(parts, evt.Time.In(time.Local).Format("2006-01-02 15:04:05"))
	}
	level := strings.ToUpper(strings.TrimSpace(evt.Level))
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, level)
	if component := strings.TrimSpace(evt.Component); component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	header := strings.Join(parts, " ")
	if message := strings.TrimSpace(evt.Message); message != "" {
		header += " – " + message
	}

	var b strings.Builder
	b.WriteString(header)
	if evt.Error != "" {
		b.WriteString("\n    - error: ")
		b.WriteString(evt.Error)
	}
	keys := make([]string, 0, len(evt.Fields))
	for key := range evt.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := strings.TrimSpace(evt.Fields[key])
		if value == "" {
			continue
		}
		b.WriteString("\n    - ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}

// FormatLines parses and formats each line. Non-JSON lines pass through.
func FormatLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		evt, ok := ParseLine(line)
		if !ok {
			out = append(out, line)
			continue
		}
		out = append(out, Format(evt))
	}
	return out
}

// AtLeast reports whether evt is at or above level. Unknown levels pass.
func AtLeast(evt Event, level zerolog.Level) bool {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(evt.Level)))
	if err != nil || evt.Level == "" {
		return true
	}
	return parsed >= level
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
