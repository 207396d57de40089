// Package v1alpha1 is the Petoverse wire API: message types, service
// descriptors, and clients for the AuthService, PetService and WorldService.
//
// Messages travel as JSON through a gRPC codec registered under the "json"
// content-subtype. Clients in this package always request that subtype, so
// the server needs nothing beyond importing the package.
package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype for Petoverse messages
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
