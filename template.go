package meltimers

import (
	"fmt"
	"strconv"
	"strings"
)

// Property is one named value produced by rendering a message template: the
// placeholder name paired with the argument that was substituted for it.
// Adapters attach properties to the log record as structured fields.
type Property struct {
	Name  string
	Value any
}

// RenderTemplate substitutes the {Name} placeholders in template with args,
// in order of appearance. It returns the rendered message and the name/value
// pairs for structured logging.
//
// A placeholder may carry a numeric format after a colon, e.g. {Elapsed:0.0}
// renders a number with one decimal place. Doubled braces ({{ and }}) are
// escapes for literal braces. A placeholder with no remaining argument is
// left in the message verbatim and yields no property.
func RenderTemplate(template string, args []any) (string, []Property) {
	var (
		b     strings.Builder
		props []Property
		next  int
	)
	b.Grow(len(template) + 16)

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				// Unterminated placeholder: keep the rest verbatim.
				b.WriteString(template[i:])
				i = len(template)
				break
			}
			end += i
			name, format := splitHole(template[i+1 : end])
			if name == "" || next >= len(args) {
				b.WriteString(template[i : end+1])
				i = end + 1
				break
			}
			value := args[next]
			next++
			b.WriteString(formatValue(value, format))
			props = append(props, Property{Name: name, Value: value})
			i = end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), props
}

// splitHole splits the inside of a placeholder into name and optional format
// ("Elapsed:0.0" -> "Elapsed", "0.0").
func splitHole(hole string) (name, format string) {
	if idx := strings.IndexByte(hole, ':'); idx >= 0 {
		return hole[:idx], hole[idx+1:]
	}
	return hole, ""
}

// formatValue renders a single argument. Formats of the "0.0" family fix the
// number of decimal places for numeric values; anything else falls back to
// the default %v rendering.
func formatValue(value any, format string) string {
	if format == "" {
		return fmt.Sprintf("%v", value)
	}
	f, ok := toFloat(value)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	decimals := 0
	if idx := strings.IndexByte(format, '.'); idx >= 0 {
		decimals = len(format) - idx - 1
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
