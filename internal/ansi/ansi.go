// Package ansi converts terminal output with ANSI SGR escape codes into
// HTML suitable for embedding in a <pre> block. Styling is expressed as
// "ansiNN" span classes matching the SGR code, so the page stylesheet
// decides the palette.
//
// Conversion is a pure function of its input: no state is kept between
// calls and non-SGR escape sequences are dropped.
package ansi

import (
	"html"
	"strconv"
	"strings"
)

const esc = '\x1b'

// sgrState tracks the active display attributes while scanning.
type sgrState struct {
	bold bool
	fg   int // 30-37, 90-97, or 0 when unset
	bg   int // 40-47, 100-107, or 0 when unset
}

func (st *sgrState) reset() {
	*st = sgrState{}
}

func (st *sgrState) active() bool {
	return st.bold || st.fg != 0 || st.bg != 0
}

func (st *sgrState) classes() string {
	var parts []string
	if st.bold {
		parts = append(parts, "ansi1")
	}
	if st.fg != 0 {
		parts = append(parts, "ansi"+strconv.Itoa(st.fg))
	}
	if st.bg != 0 {
		parts = append(parts, "ansi"+strconv.Itoa(st.bg))
	}
	return strings.Join(parts, " ")
}

// apply updates the state from one SGR parameter list like "1;31".
// An empty list is equivalent to reset, per ECMA-48.
func (st *sgrState) apply(params string) {
	if params == "" {
		st.reset()
		return
	}
	for _, p := range strings.Split(params, ";") {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			st.reset()
		case n == 1:
			st.bold = true
		case n == 22:
			st.bold = false
		case (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
			st.fg = n
		case n == 39:
			st.fg = 0
		case (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
			st.bg = n
		case n == 49:
			st.bg = 0
		}
	}
}

// Convert rewrites ANSI SGR escape sequences in s as HTML spans and escapes
// HTML metacharacters in the surrounding text. Unsupported escape sequences
// are removed from the output.
func Convert(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	var st sgrState
	i := 0
	for i < len(s) {
		if s[i] == esc {
			i = consumeEscape(s, i, &st)
			continue
		}

		// Text run up to the next escape.
		end := strings.IndexByte(s[i:], esc)
		if end < 0 {
			end = len(s)
		} else {
			end += i
		}
		writeRun(&b, s[i:end], &st)
		i = end
	}
	return b.String()
}

// writeRun writes one run of plain text, wrapped in a span when display
// attributes are active.
func writeRun(b *strings.Builder, text string, st *sgrState) {
	if text == "" {
		return
	}
	if st.active() {
		b.WriteString(`<span class="`)
		b.WriteString(st.classes())
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(text))
		b.WriteString(`</span>`)
		return
	}
	b.WriteString(html.EscapeString(text))
}

// consumeEscape advances past the escape sequence starting at i, applying it
// to the state when it is an SGR sequence. Returns the index of the first
// byte after the sequence.
func consumeEscape(s string, i int, st *sgrState) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		// Two-byte escape (e.g. ESC c); skip it.
		return i + 2
	}

	// CSI sequence: parameters then a final byte in 0x40-0x7e.
	j := i + 2
	for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
		j++
	}
	if j >= len(s) {
		return len(s)
	}
	if s[j] == 'm' {
		st.apply(s[i+2 : j])
	}
	return j + 1
}
