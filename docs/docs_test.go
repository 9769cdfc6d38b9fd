package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/o2d-pipeline-api/docs"
)

func TestSwaggerDoc_EsJSONValido(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "O2D Pipeline API", doc.Info["title"])
	assert.Contains(t, doc.Paths, "/api/quotations/{id}/items/{position}")
	assert.Contains(t, doc.Paths["/api/quotations"], "post")
}
