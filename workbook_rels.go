package xlsx

import (
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"
)

// Relationship types, as written. Strict files use another namespace prefix.
const (
	relTypeWorksheet     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeStyles        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSharedStrings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	relTypeOfficeDoc     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// relationships is the content of a .rels part.
type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Items   []relationship `xml:"Relationship"`
}

func readRelationships(reader io.Reader) (relationships, error) {
	var rels relationships
	err := xml.NewDecoder(reader).Decode(&rels)
	return rels, err
}

// targets maps the ids of one relationship type to part names. Only the last
// segment of the type is compared.
func (r relationships) targets(typ string) map[string]string {
	suffix := typ[strings.LastIndexByte(typ, '/'):]
	parts := make(map[string]string, len(r.Items))
	for _, rel := range r.Items {
		if strings.HasSuffix(rel.Type, suffix) {
			parts[rel.ID] = resolveTarget(rel.Target)
		}
	}
	return parts
}

// add appends a relationship under the next free id and returns the id.
func (r *relationships) add(typ, target string) string {
	id := "rId" + strconv.Itoa(len(r.Items)+1)
	r.Items = append(r.Items, relationship{ID: id, Type: typ, Target: target})
	return id
}

func (r relationships) bytes() []byte {
	x := newXMLWriter()
	x.open("Relationships").attr("xmlns", nsPackageRels).end()
	for _, rel := range r.Items {
		x.open("Relationship").attr("Id", rel.ID).attr("Type", rel.Type).attr("Target", rel.Target).empty()
	}
	x.close("Relationships")
	return x.bytes()
}

// resolveTarget turns a target relative to xl/ into a part name.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return target[1:]
	}
	return path.Join("xl", target)
}
