package xlsx

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// xmlWriter builds one XML part in a pooled buffer. Parts are assembled
// completely in memory before anything reaches the package.
type xmlWriter struct {
	b *bytebufferpool.ByteBuffer
}

func newXMLWriter() *xmlWriter {
	w := &xmlWriter{b: bytebufferpool.Get()}
	w.b.WriteString(xmlHeader)
	return w
}

// bytes copies the content out and returns the buffer to the pool.
func (w *xmlWriter) bytes() []byte {
	out := make([]byte, w.b.Len())
	copy(out, w.b.B)
	bytebufferpool.Put(w.b)
	w.b = nil
	return out
}

func (w *xmlWriter) open(name string) *xmlWriter {
	w.b.WriteByte('<')
	w.b.WriteString(name)
	return w
}

func (w *xmlWriter) attr(name, value string) *xmlWriter {
	w.b.WriteByte(' ')
	w.b.WriteString(name)
	w.b.WriteString(`="`)
	w.b.B = appendEscaped(w.b.B, value, true)
	w.b.WriteByte('"')
	return w
}

func (w *xmlWriter) attrInt(name string, v int) *xmlWriter {
	return w.attr(name, strconv.Itoa(v))
}

func (w *xmlWriter) attrFloat(name string, v float64) *xmlWriter {
	return w.attr(name, formatFloat(v))
}

func (w *xmlWriter) attrBool(name string, v bool) *xmlWriter {
	if v {
		return w.attr(name, "1")
	}
	return w.attr(name, "0")
}

// end finishes a start tag.
func (w *xmlWriter) end() *xmlWriter {
	w.b.WriteByte('>')
	return w
}

// empty finishes a tag without content.
func (w *xmlWriter) empty() *xmlWriter {
	w.b.WriteString("/>")
	return w
}

func (w *xmlWriter) close(name string) *xmlWriter {
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteByte('>')
	return w
}

func (w *xmlWriter) text(s string) *xmlWriter {
	w.b.B = appendEscaped(w.b.B, s, false)
	return w
}

func (w *xmlWriter) raw(s string) *xmlWriter {
	w.b.WriteString(s)
	return w
}

// element writes <name>text</name>.
func (w *xmlWriter) element(name, text string) *xmlWriter {
	return w.open(name).end().text(text).close(name)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'G', -1, 64)
}

var newlineReplacer = strings.NewReplacer("\r\n", "\r\n", "\r", "\r\n", "\n", "\r\n")

// normalizeNewlines turns every line break into CRLF.
func normalizeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return newlineReplacer.Replace(s)
}

// appendEscaped writes s with newlines normalized to CRLF, characters that
// are not allowed in XML replaced by a space and markup characters escaped.
// Attribute values additionally escape quotes and line breaks.
func appendEscaped(dst []byte, s string, attr bool) []byte {
	s = normalizeNewlines(s)
	for _, r := range s {
		switch {
		case r == '<':
			dst = append(dst, "&lt;"...)
		case r == '>':
			dst = append(dst, "&gt;"...)
		case r == '&':
			dst = append(dst, "&amp;"...)
		case attr && r == '"':
			dst = append(dst, "&quot;"...)
		case attr && r == '\r':
			dst = append(dst, "&#xD;"...)
		case attr && r == '\n':
			dst = append(dst, "&#xA;"...)
		case attr && r == '\t':
			dst = append(dst, "&#x9;"...)
		case !isXMLChar(r):
			dst = append(dst, ' ')
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

func escapeText(s string) string {
	return string(appendEscaped(nil, s, false))
}

func escapeAttr(s string) string {
	return string(appendEscaped(nil, s, true))
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// needsPreserveSpace reports whether Excel would drop leading or trailing
// whitespace of s without xml:space="preserve".
func needsPreserveSpace(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimSpace(s) != s
}
