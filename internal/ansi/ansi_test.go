package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPlainText(t *testing.T) {
	assert.Equal(t, "gpu0 ok", Convert("gpu0 ok"))
}

func TestConvertEscapesHTML(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", Convert("a <b> & c"))
}

func TestConvertForegroundColor(t *testing.T) {
	got := Convert("\x1b[31merror\x1b[0m done")
	assert.Equal(t, `<span class="ansi31">error</span> done`, got)
}

func TestConvertBoldAndColorMerge(t *testing.T) {
	// Bold and color set by consecutive sequences apply to the same run.
	got := Convert("\x1b[1m\x1b[36mtitle\x1b[0m")
	assert.Equal(t, `<span class="ansi1 ansi36">title</span>`, got)
}

func TestConvertCombinedParams(t *testing.T) {
	got := Convert("\x1b[1;32mok\x1b[m")
	assert.Equal(t, `<span class="ansi1 ansi32">ok</span>`, got)
}

func TestConvertBrightAndBackground(t *testing.T) {
	got := Convert("\x1b[97;41malert\x1b[0m")
	assert.Equal(t, `<span class="ansi97 ansi41">alert</span>`, got)
}

func TestConvertAttributeOff(t *testing.T) {
	got := Convert("\x1b[1;31mred\x1b[39m still bold\x1b[22m plain")
	assert.Equal(t,
		`<span class="ansi1 ansi31">red</span><span class="ansi1"> still bold</span> plain`,
		got)
}

func TestConvertDropsUnsupportedSequences(t *testing.T) {
	// Cursor movement and screen clear sequences disappear from output.
	got := Convert("a\x1b[2Jb\x1b[3;4Hc")
	assert.Equal(t, "abc", got)
}

func TestConvertTruncatedEscape(t *testing.T) {
	// Input ending mid-sequence must not panic or emit garbage.
	assert.Equal(t, "text", Convert("text\x1b["))
	assert.Equal(t, "text", Convert("text\x1b"))
}

func TestConvertIsPure(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain \x1b[32mgreen\x1b[0m"
	first := Convert(in)
	second := Convert(in)
	assert.Equal(t, first, second)
}

func TestConvertMultiline(t *testing.T) {
	in := "\x1b[37m(mini) \x1b[0m\x1b[31mconnection refused\x1b[0m\n"
	got := Convert(in)
	assert.Equal(t,
		`<span class="ansi37">(mini) </span><span class="ansi31">connection refused</span>`+"\n",
		got)
}
