package server

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// resourcePathTemplate is the path item in openapi.yaml that describes a fixed resource.
const resourcePathTemplate = "/your-backend-endpoint"

//go:embed openapi.yaml
var rawSchema []byte

// GetSwagger returns the OpenAPI description of the public API.
// Every path in resourcePaths gets the fixed resource description,
// without them the default route is described.
func GetSwagger(resourcePaths ...string) (*openapi3.T, error) {
	swagger, err := openapi3.NewLoader().LoadFromData(rawSchema)
	if err != nil {
		return nil, fmt.Errorf("load schema: %v", err)
	}

	if len(resourcePaths) == 0 {
		return swagger, nil
	}

	item := swagger.Paths.Value(resourcePathTemplate)
	if item == nil {
		return nil, fmt.Errorf("schema has no %q path", resourcePathTemplate)
	}

	paths := openapi3.NewPaths()
	for p, v := range swagger.Paths.Map() {
		if p != resourcePathTemplate {
			paths.Set(p, v)
		}
	}
	for _, p := range resourcePaths {
		paths.Set(p, item)
	}
	swagger.Paths = paths

	return swagger, nil
}
