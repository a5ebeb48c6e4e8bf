// Package opc stores the parts of an Open Packaging Conventions container.
// An xlsx file is such a container: a zip archive of named XML parts.
package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/valyala/bytebufferpool"
)

var ErrPartNotFound = errors.New("part not found")

// Package holds the parts of one container. Parts read from an archive are
// opened lazily; parts stored with Put are kept in memory and win over them.
type Package struct {
	files map[string]*zip.File
	parts map[string][]byte
	order []string
}

func New() *Package {
	return &Package{
		files: make(map[string]*zip.File),
		parts: make(map[string][]byte),
	}
}

// Open indexes the parts of a zip archive.
func Open(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}
	p := New()
	for _, f := range zr.File {
		name := normalize(f.Name)
		if _, ok := p.files[name]; !ok {
			p.order = append(p.order, name)
		}
		p.files[name] = f
	}
	return p, nil
}

func normalize(name string) string {
	return strings.TrimPrefix(strings.ReplaceAll(name, `\`, "/"), "/")
}

func (p *Package) Has(name string) bool {
	name = normalize(name)
	if _, ok := p.parts[name]; ok {
		return true
	}
	_, ok := p.files[name]
	return ok
}

// Part opens a part for reading.
func (p *Package) Part(name string) (io.ReadCloser, error) {
	name = normalize(name)
	if data, ok := p.parts[name]; ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrPartNotFound)
	}
	return f.Open()
}

// ReadPart returns the whole content of a part.
func (p *Package) ReadPart(name string) ([]byte, error) {
	rc, err := p.Part(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Put stores a part, replacing any part with the same name.
func (p *Package) Put(name string, data []byte) {
	name = normalize(name)
	if !p.Has(name) {
		p.order = append(p.order, name)
	}
	p.parts[name] = data
}

// Find returns the first part, in archive order, whose name ends with suffix.
func (p *Package) Find(suffix string) (string, bool) {
	for _, name := range p.order {
		if strings.HasSuffix(name, suffix) {
			return name, true
		}
	}
	return "", false
}

// Names lists the parts in archive order.
func (p *Package) Names() []string {
	return slices.Clone(p.order)
}

// WriteTo writes the package as a zip archive. The archive is built in memory
// first, so nothing reaches w when a part fails.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	zw := zip.NewWriter(buf)
	for _, name := range p.order {
		data, err := p.ReadPart(name)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", name, err)
		}
		fw, err := zw.Create(name)
		if err != nil {
			return 0, fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return 0, fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}
