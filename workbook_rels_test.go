package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelationshipsTargets(t *testing.T) {
	const data = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://purl.oclc.org/ooxml/officeDocument/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/other.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`
	rels, err := readRelationships(bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"rId1": "xl/worksheets/sheet1.xml",
		"rId2": "xl/worksheets/other.xml",
	}, rels.targets(relTypeWorksheet))
	require.Equal(t, map[string]string{"rId3": "xl/styles.xml"}, rels.targets(relTypeStyles))
}

func TestRelationshipsAdd(t *testing.T) {
	var rels relationships
	require.Equal(t, "rId1", rels.add(relTypeWorksheet, "worksheets/sheet1.xml"))
	require.Equal(t, "rId2", rels.add(relTypeStyles, "styles.xml"))

	got, err := readRelationships(bytes.NewReader(rels.bytes()))
	require.NoError(t, err)
	require.Equal(t, rels.Items, got.Items)
}
