package kml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2">
  <Document>
    <gx:Tour><name>tour</name></gx:Tour>
    <Folder>
      <Placemark><name>a</name></Placemark>
    </Folder>
    <Placemark><name>b</name></Placemark>
  </Document>
</kml>`
	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "kml", root.Name)

	pms := root.FindAll("Placemark")
	require.Len(t, pms, 2)
	assert.Equal(t, "a", pms[0].Child("name").Text)
	assert.Equal(t, "b", pms[1].Child("name").Text)

	assert.NotNil(t, root.Find("Tour"), "prefixes are ignored")
	assert.Nil(t, root.Child("Placemark"), "Child only looks one level down")
	assert.Equal(t, "a", root.FindPath("Folder", "Placemark", "name").Text)
	assert.Nil(t, root.FindPath("Folder", "Missing", "name"))

	names := root.FindAllOutside("name", "Folder")
	require.Len(t, names, 2)
	assert.Equal(t, "tour", names[0].Text)
	assert.Equal(t, "b", names[1].Text)
}

func TestDecodeLegacyCharset(t *testing.T) {
	t.Parallel()

	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<kml><Placemark><name>Caf\xe9</name></Placemark></kml>"
	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Café", root.FindPath("Placemark", "name").Text)

	_, err = Decode(strings.NewReader(`<?xml version="1.0" encoding="x-no-such-charset"?><kml/>`))
	assert.ErrorIs(t, err, ErrMalformedXML)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"mismatched": "<kml><Document></kml>",
		"unclosed":   "<kml><Document>",
		"empty":      "",
		"text only":  "not xml at all",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrMalformedXML)
		})
	}
}

func TestNilNode(t *testing.T) {
	t.Parallel()

	var n *Node
	assert.Nil(t, n.Child("x"))
	assert.Nil(t, n.Find("x"))
	assert.Empty(t, n.FindAll("x"))
}
