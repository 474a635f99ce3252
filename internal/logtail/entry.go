package logtail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const tsLayout = "2006-01-02T15:04:05.000Z0700"

// reserved keys are rendered in fixed positions, never as fields.
var reserved = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true,
	"caller": true, "stacktrace": true,
}

// Field is one structured key/value pair of a log entry.
type Field struct {
	Key   string
	Value string
}

// Entry is one parsed log line. Raw is set for lines that were not JSON.
type Entry struct {
	Time   time.Time
	Level  zapcore.Level
	Logger string
	Msg    string
	Fields []Field
	Raw    string
}

// Parse decodes a JSON log line. Anything that is not a JSON object comes
// back as a Raw entry at info level.
func Parse(line string) Entry {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return Entry{Raw: line, Level: zapcore.InfoLevel}
	}

	e := Entry{Level: zapcore.InfoLevel}
	if s, ok := obj["ts"].(string); ok {
		if t, err := time.Parse(tsLayout, s); err == nil {
			e.Time = t
		}
	}
	if s, ok := obj["level"].(string); ok {
		if lvl, err := zapcore.ParseLevel(s); err == nil {
			e.Level = lvl
		}
	}
	e.Logger, _ = obj["logger"].(string)
	e.Msg, _ = obj["msg"].(string)

	keys := make([]string, 0, len(obj))
	for k := range obj {
		if !reserved[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Fields = append(e.Fields, Field{Key: k, Value: formatValue(obj[k])})
	}
	return e
}

// String renders the entry as a single readable line:
//
//	2026-10-19 12:00:05 WARN  [deeplink] share link rejected reason=unknown_kind
func (e Entry) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s", e.Level.CapitalString())
	if e.Logger != "" {
		b.WriteString(" [")
		b.WriteString(e.Logger)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(e.Msg)
	for _, f := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// AtLeast filters entries to those at or above min.
func AtLeast(entries []Entry, min zapcore.Level) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Level >= min {
			out = append(out, e)
		}
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" || strings.ContainsAny(val, " \t\"=") {
			return strconv.Quote(val)
		}
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(buf.String())
	}
}
