package xmlgen

import (
	"fmt"
	"strings"
	"time"
)

// LongDateLayout is the layout of dates without a pattern.
const LongDateLayout = "Monday, January 2, 2006 3:04:05 PM MST"

// DateChunk is one piece of a compiled date pattern: either a Go layout
// element or literal text.
type DateChunk struct {
	Layout  string
	Literal string
}

// DateFormat formats dates with a pattern compiled once from the
// letters y M L d D H h m s S a E z Z X and quoted literals.
//
// Only letters with a Go layout equivalent compile: S is accepted as SSS
// (milliseconds) after '.' or ',', D as DDD, and k K w W F u G are
// rejected.
type DateFormat struct {
	Pattern string

	chunks []DateChunk
	layout string
	single bool
}

// CompileDateFormat compiles pattern. The empty pattern selects
// LongDateLayout.
func CompileDateFormat(pattern string) (*DateFormat, error) {
	df := &DateFormat{Pattern: pattern}
	if pattern == "" {
		df.chunks = []DateChunk{{Layout: LongDateLayout}}
		df.layout, df.single = LongDateLayout, true
		return df, nil
	}
	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == '\'':
			lit, n, err := quoted(rs[i:])
			if err != nil {
				return nil, fmt.Errorf("date pattern %q: %w", pattern, err)
			}
			df.addLiteral(lit)
			i += n
		case isLetter(r):
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			if err := df.addLetters(r, j-i); err != nil {
				return nil, fmt.Errorf("date pattern %q: %w", pattern, err)
			}
			i = j
		default:
			df.addLiteral(string(r))
			i++
		}
	}
	df.layout, df.single = joinLayout(df.chunks)
	return df, nil
}

// Chunks returns the compiled pattern.
func (df *DateFormat) Chunks() []DateChunk {
	return df.chunks
}

// Layout returns a single Go layout equivalent to the pattern, when the
// literal text of the pattern cannot be mistaken for layout elements.
func (df *DateFormat) Layout() (string, bool) {
	return df.layout, df.single
}

// Format formats t.
func (df *DateFormat) Format(t time.Time) string {
	if df.single {
		return t.Format(df.layout)
	}
	var b strings.Builder
	for _, c := range df.chunks {
		if c.Layout == "" {
			b.WriteString(c.Literal)
			continue
		}
		b.WriteString(t.Format(c.Layout))
	}
	return b.String()
}

func (df *DateFormat) addLiteral(s string) {
	if s == "" {
		return
	}
	if n := len(df.chunks); n > 0 && df.chunks[n-1].Layout == "" {
		df.chunks[n-1].Literal += s
		return
	}
	df.chunks = append(df.chunks, DateChunk{Literal: s})
}

func (df *DateFormat) addLetters(r rune, n int) error {
	if r == 'S' {
		if n != 3 {
			return fmt.Errorf("S is milliseconds, only SSS has a Go layout")
		}
		// Go only knows fractional seconds after a separator, so the
		// separator moves into the layout element.
		last := len(df.chunks) - 1
		if last < 0 || df.chunks[last].Layout != "" {
			return fmt.Errorf("S must follow '.' or ','")
		}
		lit := df.chunks[last].Literal
		sep := lit[len(lit)-1]
		if sep != '.' && sep != ',' {
			return fmt.Errorf("S must follow '.' or ','")
		}
		if len(lit) == 1 {
			df.chunks = df.chunks[:last]
		} else {
			df.chunks[last].Literal = lit[:len(lit)-1]
		}
		df.chunks = append(df.chunks, DateChunk{Layout: string(sep) + "000"})
		return nil
	}
	layout, err := letterLayout(r, n)
	if err != nil {
		return err
	}
	df.chunks = append(df.chunks, DateChunk{Layout: layout})
	return nil
}

func letterLayout(r rune, n int) (string, error) {
	pick := func(short, long string, at int) string {
		if n >= at {
			return long
		}
		return short
	}
	switch r {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch n {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		}
		return "January", nil
	case 'd':
		return pick("2", "02", 2), nil
	case 'D':
		if n < 3 {
			return "", fmt.Errorf("day of year is always padded, use DDD")
		}
		return "002", nil
	case 'H':
		return "15", nil
	case 'h':
		return pick("3", "03", 2), nil
	case 'm':
		return pick("4", "04", 2), nil
	case 's':
		return pick("5", "05", 2), nil
	case 'a':
		return "PM", nil
	case 'E':
		return pick("Mon", "Monday", 4), nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		}
		return "Z07:00", nil
	case 'k', 'K', 'w', 'W', 'F', 'u', 'G':
		return "", fmt.Errorf("pattern letter %q has no Go layout", r)
	}
	return "", fmt.Errorf("unsupported pattern letter %q", r)
}

// quoted reads a quoted literal at the start of rs and returns it with the
// number of runes consumed. Two quotes stand for one.
func quoted(rs []rune) (string, int, error) {
	if len(rs) > 1 && rs[1] == '\'' {
		return "'", 2, nil
	}
	var b strings.Builder
	for i := 1; i < len(rs); i++ {
		if rs[i] != '\'' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 < len(rs) && rs[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quote")
}

func joinLayout(chunks []DateChunk) (string, bool) {
	var b strings.Builder
	for i, c := range chunks {
		if c.Layout != "" {
			// adjacent numeric elements such as "1" and "5" would read as "15"
			if i > 0 && chunks[i-1].Layout != "" && isDigit(lastByte(chunks[i-1].Layout)) && isDigit(c.Layout[0]) {
				return "", false
			}
			b.WriteString(c.Layout)
			continue
		}
		if strings.ContainsAny(c.Literal, "JMPpZ0123456789_") {
			return "", false
		}
		b.WriteString(c.Literal)
	}
	return b.String(), true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func lastByte(s string) byte { return s[len(s)-1] }

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

var dateInputLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// parseDate reads dates given as text in data documents.
func parseDate(s string) (time.Time, error) {
	var err error
	for _, l := range dateInputLayouts {
		var t time.Time
		t, err = time.Parse(l, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
