package opc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutAndWrite(t *testing.T) {
	p := New()
	p.Put("[Content_Types].xml", []byte("<Types/>"))
	p.Put("/xl/workbook.xml", []byte("<workbook/>"))
	p.Put("xl/worksheets/sheet1.xml", []byte("<worksheet/>"))

	require.True(t, p.Has("xl/workbook.xml"))
	require.Equal(t, []string{"[Content_Types].xml", "xl/workbook.xml", "xl/worksheets/sheet1.xml"}, p.Names())

	var out bytes.Buffer
	n, err := p.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(out.Len()), n)

	read, err := Open(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	require.Equal(t, p.Names(), read.Names())

	data, err := read.ReadPart("xl/workbook.xml")
	require.NoError(t, err)
	require.Equal(t, "<workbook/>", string(data))

	name, ok := read.Find("sheet1.xml")
	require.True(t, ok)
	require.Equal(t, "xl/worksheets/sheet1.xml", name)
}

func TestPutReplaces(t *testing.T) {
	p := New()
	p.Put("a.xml", []byte("1"))
	p.Put("a.xml", []byte("2"))
	require.Equal(t, []string{"a.xml"}, p.Names())

	data, err := p.ReadPart("a.xml")
	require.NoError(t, err)
	require.Equal(t, "2", string(data))
}

func TestMissingPart(t *testing.T) {
	p := New()
	_, err := p.Part("xl/styles.xml")
	require.ErrorIs(t, err, ErrPartNotFound)

	_, ok := p.Find("styles.xml")
	require.False(t, ok)
}

func TestOpenNotZip(t *testing.T) {
	data := []byte("not a zip")
	_, err := Open(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
}
