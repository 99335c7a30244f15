package cockroach

import "strings"

// DatetimeFormat translates a pattern such as "yyyy-MM-dd HH:mm:ss" into the
// strftime directives accepted by experimental_strftime. Text between single
// quotes is copied literally and a doubled quote yields one quote. Pattern
// letters without a strftime equivalent are dropped.
func DatetimeFormat(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '\'':
			i = appendQuoted(&b, format, i+1)
		case c == '%':
			b.WriteString("%%")
			i++
		case isPatternLetter(c):
			n := 1
			for i+n < len(format) && format[i+n] == c {
				n++
			}
			b.WriteString(directive(c, n))
			i += n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// appendQuoted copies a quoted literal starting after the opening quote and
// returns the index following the closing quote.
func appendQuoted(b *strings.Builder, format string, i int) int {
	if i < len(format) && format[i] == '\'' {
		b.WriteByte('\'')
		return i + 1
	}
	for i < len(format) {
		c := format[i]
		if c != '\'' {
			if c == '%' {
				b.WriteByte('%')
			}
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '\'' {
			b.WriteByte('\'')
			i += 2
			continue
		}
		return i + 1
	}
	return i
}

func isPatternLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func directive(c byte, n int) string {
	switch c {
	case 'y', 'u', 'Y':
		if n == 2 {
			return "%y"
		}
		return "%Y"
	case 'M', 'L':
		switch {
		case n >= 4:
			return "%B"
		case n == 3:
			return "%b"
		}
		return "%m"
	case 'w':
		return "%V"
	case 'E':
		if n >= 4 {
			return "%A"
		}
		return "%a"
	case 'e':
		return "%u"
	case 'd':
		if n == 1 {
			return "%e"
		}
		return "%d"
	case 'D':
		return "%j"
	case 'a':
		return "%p"
	case 'h':
		if n == 1 {
			return "%l"
		}
		return "%I"
	case 'H':
		if n == 1 {
			return "%k"
		}
		return "%H"
	case 'm':
		return "%M"
	case 's':
		return "%S"
	case 'S':
		return "%f"
	case 'z', 'Z', 'X', 'x':
		if c == 'z' {
			return "%Z"
		}
		return "%z"
	}
	return ""
}
