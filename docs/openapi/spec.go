// Package openapi embeds the service's OpenAPI document for runtime
// distribution. The HTTP server republishes it at /openapi.yaml.
package openapi

import _ "embed"

// APISpec contains the OpenAPI document for the grocery-list REST API.
//
//go:embed api.yaml
var APISpec []byte

// Spec returns a defensive copy of the embedded OpenAPI YAML.
func Spec() []byte {
	return append([]byte(nil), APISpec...)
}
