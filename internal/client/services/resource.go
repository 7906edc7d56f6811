package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Messages are the per-operation fallbacks shown when the server gives none.
type Messages struct {
	List   string
	Get    string
	Create string
	Update string
	Remove string
}

// Resource is the uniform CRUD facade for one collection.
type Resource[T any] struct {
	gw       Gateway
	path     string
	messages Messages
}

func NewResource[T any](gw Gateway, path string, messages Messages) *Resource[T] {
	return &Resource[T]{gw: gw, path: path, messages: messages}
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *Resource[T]) List(ctx context.Context) Result[[]T] {
	return r.list(ctx, nil)
}

func (r *Resource[T]) list(ctx context.Context, query url.Values) Result[[]T] {
	resp, err := r.gw.Get(ctx, r.path, query)
	res := decode[[]T](resp, err, r.messages.List)
	if res.Success && res.Data == nil {
		res.Data = []T{}
	}
	return res
}

func (r *Resource[T]) Get(ctx context.Context, id int64) Result[T] {
	resp, err := r.gw.Get(ctx, r.itemPath(id), nil)
	return decode[T](resp, err, r.messages.Get)
}

func (r *Resource[T]) Create(ctx context.Context, record T) Result[T] {
	resp, err := r.gw.Post(ctx, r.path, record)
	return decode[T](resp, err, r.messages.Create)
}

func (r *Resource[T]) Update(ctx context.Context, id int64, record T) Result[T] {
	resp, err := r.gw.Put(ctx, r.itemPath(id), record)
	return decode[T](resp, err, r.messages.Update)
}

// Remove deletes the record. Data carries whatever the server answered.
func (r *Resource[T]) Remove(ctx context.Context, id int64) Result[json.RawMessage] {
	resp, err := r.gw.Delete(ctx, r.itemPath(id))
	if err != nil {
		return fail[json.RawMessage](err, r.messages.Remove)
	}
	return ok(resp.Data)
}
