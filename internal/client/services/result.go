package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
)

// Gateway is the part of api.Gateway the services use.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values) (*api.Response, error)
	Post(ctx context.Context, path string, body any) (*api.Response, error)
	Put(ctx context.Context, path string, body any) (*api.Response, error)
	Delete(ctx context.Context, path string) (*api.Response, error)
}

// Result is the outcome of a service call. When Success is false, Message
// is always non-empty and Errors holds field errors if the server sent any.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Errors  map[string][]string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error, fallback string) Result[T] {
	return Result[T]{
		Message: api.MessageOf(err, fallback),
		Errors:  api.FieldErrorsOf(err),
	}
}

// decode turns a gateway outcome into a Result. The backend may wrap payloads
// as {"data": ...}; both shapes are accepted.
func decode[T any](resp *api.Response, err error, fallback string) Result[T] {
	if err != nil {
		return fail[T](err, fallback)
	}

	var out T
	if len(resp.Data) == 0 {
		return ok(out)
	}
	if err := unwrapData(resp.Data, &out); err != nil {
		return Result[T]{Message: fallback}
	}
	return ok(out)
}

func unwrapData(raw json.RawMessage, v any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(raw, &envelope) == nil && len(envelope.Data) > 0 && isContainer(envelope.Data) {
		return json.Unmarshal(envelope.Data, v)
	}
	return json.Unmarshal(raw, v)
}

func isContainer(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}
