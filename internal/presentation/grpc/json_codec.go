package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is the codec identifier clients must select to talk to this
// server while the wire types travel as plain JSON (see proto.go).
const codecName = "json"

func init() {
	encoding.RegisterCodec(creditCodec{})
}

type creditCodec struct{}

func (creditCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (creditCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (creditCodec) Name() string { return codecName }
