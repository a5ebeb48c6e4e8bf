package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeText(t *testing.T) {
	require.Equal(t, "a &lt;b&gt; &amp; \"c\"", escapeText(`a <b> & "c"`))
	require.Equal(t, "x y z", escapeText("x\x00y\x1Fz"))
	require.Equal(t, "a\r\nb\r\nc\r\nd", escapeText("a\nb\r\nc\rd"))
	require.Equal(t, "\uFFFD ok", escapeText("\uFFFD ok"))
	require.Equal(t, " ", escapeText("\uFFFE"))
}

func TestEscapeAttr(t *testing.T) {
	require.Equal(t, "&quot;q&quot; &lt;&amp;&gt;", escapeAttr(`"q" <&>`))
	require.Equal(t, "a&#xD;&#xA;b", escapeAttr("a\nb"))
}

func TestXMLWriter(t *testing.T) {
	w := newXMLWriter()
	w.open("c").attr("r", "A1").attr("t", "s").end().element("v", "1<2").close("c")
	w.open("x").attrInt("n", 3).attrFloat("f", 0.5).attrBool("b", true).empty()
	require.Equal(t, xmlHeader+`<c r="A1" t="s"><v>1&lt;2</v></c><x n="3" f="0.5" b="1"/>`, string(w.bytes()))
}

func TestNeedsPreserveSpace(t *testing.T) {
	require.False(t, needsPreserveSpace(""))
	require.False(t, needsPreserveSpace("a b"))
	require.True(t, needsPreserveSpace(" a"))
	require.True(t, needsPreserveSpace("a\n"))
}
