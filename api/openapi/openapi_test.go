package openapi_test

import (
	"encoding/json"
	"testing"

	"catering/api/openapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad_EmbeddedDocumentIsValid(t *testing.T) {
	doc, err := openapi.Load(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Catering Orders API", doc.Info.Title)
	for _, path := range []string{
		"/orders",
		"/orders/counts",
		"/orders/export",
		"/orders/{orderId}",
		"/orders/{orderId}/status",
		"/catalog",
		"/catalog/{itemId}/eligibility",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestJSON_RendersDocument(t *testing.T) {
	doc, err := openapi.Load(t.Context())
	require.NoError(t, err)

	raw, err := openapi.JSON(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])
}

func TestRegisterSwagger(t *testing.T) {
	openapi.RegisterSwagger([]byte(`{"openapi":"3.0.3"}`))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, raw)
}

func TestYAML_ReturnsCopy(t *testing.T) {
	first := openapi.YAML()
	require.NotEmpty(t, first)
	first[0] = 'X'
	assert.NotEqual(t, first[0], openapi.YAML()[0])
}
