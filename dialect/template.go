package dialect

import "strings"

// Template is a SQL expression pattern with positional placeholders ?1, ?2,
// and so on.
type Template string

// Render substitutes the placeholders with args. Placeholders without a
// matching argument are left untouched.
func (t Template) Render(args ...string) string {
	s := string(t)
	if !strings.Contains(s, "?") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '?' || i+1 >= len(s) || !isDigit(s[i+1]) {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		n := 0
		for j < len(s) && isDigit(s[j]) {
			n = n*10 + int(s[j]-'0')
			j++
		}
		if n >= 1 && n <= len(args) {
			b.WriteString(args[n-1])
		} else {
			b.WriteString(s[i:j])
		}
		i = j - 1
	}
	return b.String()
}

// Arity returns the highest placeholder index used by the template.
func (t Template) Arity() int {
	s := string(t)
	highest := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '?' {
			continue
		}
		n := 0
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			n = n*10 + int(s[j]-'0')
			j++
		}
		if n > highest {
			highest = n
		}
		i = j - 1
	}
	return highest
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
