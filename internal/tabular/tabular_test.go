package tabular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeShapes(t *testing.T) {
	doc, err := Decode([]byte(`
name = "Ocean"
count = 3
ratio = 0.5
flag = true

[table]
nested = "value"

[[items]]
offset = 0.0

[[items]]
offset = 1.0
`))
	require.NoError(t, err)

	root, ok := doc.AsTable()
	require.True(t, ok)

	s, ok := root["name"].AsString()
	require.True(t, ok)
	require.Equal(t, "Ocean", s)

	n, ok := root["count"].AsNumber()
	require.True(t, ok)
	require.Equal(t, 3.0, n)
	require.Equal(t, KindInteger, root["count"].Kind())

	f, ok := root["ratio"].AsNumber()
	require.True(t, ok)
	require.Equal(t, 0.5, f)

	b, ok := root["flag"].AsBool()
	require.True(t, ok)
	require.True(t, b)

	tbl, ok := root["table"].AsTable()
	require.True(t, ok)
	require.Equal(t, KindString, tbl["nested"].Kind())

	arr, ok := root["items"].AsArray()
	require.True(t, ok)
	require.Len(t, arr, 2)
	require.Equal(t, KindTable, arr[0].Kind())
}

func TestDecodeRejectsSyntaxErrors(t *testing.T) {
	_, err := Decode([]byte("[broken\nkey ="))
	require.Error(t, err)
}

func TestShapeAccessorsRejectWrongKind(t *testing.T) {
	doc, err := Decode([]byte(`value = "text"`))
	require.NoError(t, err)

	root, _ := doc.AsTable()
	_, ok := root["value"].AsNumber()
	require.False(t, ok)
	_, ok = root["value"].AsTable()
	require.False(t, ok)
	_, ok = root["value"].AsArray()
	require.False(t, ok)
}
