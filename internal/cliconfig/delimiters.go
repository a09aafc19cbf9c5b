package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDelimiter converts an escaped delimiter spec like `\r\n` into raw
// bytes. Supported escapes: \n \r \t \0 \\ and \xNN with two hex digits.
// All other bytes pass through unchanged.
func ParseDelimiter(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("trailing backslash in %q", s)
		}
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '0':
			out = append(out, 0)
		case '\\':
			out = append(out, '\\')
		case 'x':
			if i+2 >= len(s) {
				return nil, fmt.Errorf("truncated \\x escape in %q", s)
			}
			b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid \\x escape in %q", s)
			}
			out = append(out, byte(b))
			i += 2
		default:
			return nil, fmt.Errorf("unknown escape \\%c in %q", s[i], s)
		}
	}
	return out, nil
}

// ParseDelimiters converts a list of escaped delimiter specs into raw byte
// sequences, preserving order. Empty results are rejected here so the error
// names the offending entry instead of surfacing later.
func ParseDelimiters(specs []string) ([][]byte, error) {
	out := make([][]byte, 0, len(specs))
	for i, spec := range specs {
		b, err := ParseDelimiter(spec)
		if err != nil {
			return nil, fmt.Errorf("delimiter %d: %w", i, err)
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("delimiter %d is empty", i)
		}
		out = append(out, b)
	}
	return out, nil
}

// FormatDelimiter renders raw delimiter bytes in escaped form for display.
// It is the inverse of ParseDelimiter for the escapes it emits.
func FormatDelimiter(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	return sb.String()
}

// FormatDelimiters renders each delimiter in escaped form.
func FormatDelimiters(delims [][]byte) []string {
	out := make([]string, len(delims))
	for i, d := range delims {
		out[i] = FormatDelimiter(d)
	}
	return out
}
