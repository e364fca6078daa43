// Package openapi embeds the REST API description and exposes it to the HTTP
// adapter and the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// YAML returns the embedded document as written.
func YAML() []byte {
	return append([]byte(nil), document...)
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// JSON renders a loaded document for /openapi.json and the Swagger UI.
func JSON(doc *openapi3.T) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return raw, nil
}

type swaggerDoc struct {
	raw string
}

func (d swaggerDoc) ReadDoc() string {
	return d.raw
}

var registerOnce sync.Once

// RegisterSwagger publishes raw under swag's default instance name, which is
// where echo-swagger reads doc.json from. Only the first call takes effect.
func RegisterSwagger(raw []byte) {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{raw: string(raw)})
	})
}
