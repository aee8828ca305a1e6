package snapshot

import (
	"testing"

	"photocatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c := domain.NewCatalog()
	paris, err := c.CreateAlbum("Paris")
	require.NoError(t, err)
	nyc, err := c.CreateAlbum("NYC")
	require.NoError(t, err)
	_, err = c.CreateAlbum("Empty")
	require.NoError(t, err)

	a, _ := domain.NewPhoto("content://media/a", "a.jpg")
	_, _ = a.AddTag("person", "Alice")
	_, _ = a.AddTag("location", "Paris")
	b, _ := domain.NewPhoto("content://media/b", "b.jpg")
	_, _ = b.AddTag("person", "Alice")
	c2, _ := domain.NewPhoto("content://media/c", "c.jpg")
	paris.AddPhoto(a)
	paris.AddPhoto(c2)
	nyc.AddPhoto(b)
	return c
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleCatalog(t)

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	require.Equal(t, original.Len(), decoded.Len())
	for i, want := range original.Albums() {
		got := decoded.Albums()[i]
		assert.True(t, domain.SameName(want.Name(), got.Name()))
		assert.NotSame(t, want, got)
		require.Equal(t, want.Len(), got.Len())
		for j, wp := range want.Photos() {
			gp := got.Photos()[j]
			assert.True(t, wp.Same(gp))
			assert.Equal(t, wp.DisplayName(), gp.DisplayName())
			require.Equal(t, wp.TagCount(), gp.TagCount())
			for k, wt := range wp.Tags() {
				assert.True(t, wt.Equal(gp.Tags()[k]))
			}
		}
	}
}

func TestEncode_Format(t *testing.T) {
	c := domain.NewCatalog()
	album, _ := c.CreateAlbum("Trip")
	p, _ := domain.NewPhoto("ref-1", "one.jpg")
	_, _ = p.AddTag("person", "Alice")
	album.AddPhoto(p)

	data, err := Encode(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"format_version": 1,
		"albums": [{
			"name": "Trip",
			"photos": [{
				"resource_ref": "ref-1",
				"display_name": "one.jpg",
				"tags": [{"category": "person", "value": "Alice"}]
			}]
		}]
	}`, string(data))

	empty, err := Encode(domain.NewCatalog())
	require.NoError(t, err)
	assert.JSONEq(t, `{"format_version":1,"albums":[]}`, string(empty))

	_, err = Encode(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `\x00\x01garbage`},
		{"truncated", `{"format_version":1,"albums":[{"name":"Trip"`},
		{"unknown version", `{"format_version":2,"albums":[]}`},
		{"missing version", `{"albums":[]}`},
		{"duplicate album names", `{"format_version":1,"albums":[{"name":"Trip","photos":[]},{"name":"TRIP","photos":[]}]}`},
		{"empty album name", `{"format_version":1,"albums":[{"name":" ","photos":[]}]}`},
		{"duplicate photo", `{"format_version":1,"albums":[{"name":"Trip","photos":[
			{"resource_ref":"r","display_name":"a","tags":[]},
			{"resource_ref":"r","display_name":"b","tags":[]}]}]}`},
		{"photo without ref", `{"format_version":1,"albums":[{"name":"Trip","photos":[{"resource_ref":"","display_name":"a"}]}]}`},
		{"unknown tag category", `{"format_version":1,"albums":[{"name":"Trip","photos":[
			{"resource_ref":"r","display_name":"a","tags":[{"category":"camera","value":"x"}]}]}]}`},
		{"repeated tag", `{"format_version":1,"albums":[{"name":"Trip","photos":[
			{"resource_ref":"r","display_name":"a","tags":[{"category":"person","value":"x"},{"category":"person","value":"X"}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode([]byte(tt.data))
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Nil(t, c)
		})
	}
}

func TestDecode_NullAlbums(t *testing.T) {
	c, err := Decode([]byte(`{"format_version":1,"albums":null}`))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
