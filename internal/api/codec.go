// Package api defines the recipelist.v1 Connect services: request and
// response messages, procedure names, handler constructors and clients.
//
// Messages are plain Go structs encoded as JSON, so any HTTP client can call
// the API with the Connect unary protocol:
//
//	curl -H 'Content-Type: application/json' -d '{}' \
//	    http://localhost:8080/recipelist.v1.RecipeService/ListRecipes
package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

const (
	codecNameJSON            = "json"
	codecNameJSONCharsetUTF8 = "json; charset=utf-8"
)

// jsonCodec is a connect.Codec for plain structs.
// Connect's built-in JSON codec only handles protobuf messages.
type jsonCodec struct {
	name string
}

var _ connect.Codec = jsonCodec{}

func (c jsonCodec) Name() string { return c.name }

func (c jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (c jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to decode %T: %w", msg, err)
	}
	return nil
}

// HandlerOptions returns the options every handler in this package needs.
func HandlerOptions() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: codecNameJSON}),
		connect.WithCodec(jsonCodec{name: codecNameJSONCharsetUTF8}),
	}
}

// ClientOptions returns the options every client in this package needs.
func ClientOptions() []connect.ClientOption {
	return []connect.ClientOption{
		connect.WithCodec(jsonCodec{name: codecNameJSON}),
	}
}
