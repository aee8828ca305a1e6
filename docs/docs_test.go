package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger string                                `json:"swagger"`
		Info    struct{ Title string }                `json:"info"`
		Paths   map[string]map[string]json.RawMessage `json:"paths"`
		Defs    map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Photo Catalog API", doc.Info.Title)

	routes := map[string][]string{
		"/albums":                       {"get", "post"},
		"/albums/{name}":                {"get", "patch", "delete"},
		"/albums/{name}/photos":         {"get", "post", "delete"},
		"/albums/{name}/photos/detail":  {"get"},
		"/albums/{name}/photos/content": {"get"},
		"/albums/{name}/photos/move":    {"post"},
		"/albums/{name}/photos/tags":    {"post", "delete"},
		"/search":                       {"post"},
		"/catalog/save":                 {"post"},
		"/catalog/reload":               {"post"},
	}
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
	for _, def := range []string{"controllers.ChangeResponse", "domain.SearchHit", "helpers.APIResponse"} {
		assert.Contains(t, doc.Defs, def)
	}
}
