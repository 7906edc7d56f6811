package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/vetclinic/internal/common"
	"github.com/dmitrijs2005/vetclinic/internal/logging"
)

// Response is a successful gateway call.
type Response struct {
	Data       json.RawMessage
	Status     int
	Header     http.Header
	Generation uint64
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("decode response: empty body")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Call is what response interceptors inspect. Exactly one of Response and
// Err is set.
type Call struct {
	Request    *http.Request
	Response   *Response
	Err        error
	Generation uint64
}

// RequestInterceptor runs before dispatch. A non-nil error aborts the call.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor runs after every call and returns the error the caller
// will see (usually call.Err unchanged).
type ResponseInterceptor func(ctx context.Context, call *Call) error

type Gateway struct {
	baseURL    *url.URL
	client     *http.Client
	header     http.Header
	request    []RequestInterceptor
	response   []ResponseInterceptor
	generation func() uint64
	logger     logging.Logger
}

type Option func(*Gateway)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

func WithRequestInterceptors(ics ...RequestInterceptor) Option {
	return func(g *Gateway) { g.OnRequest(ics...) }
}

func WithResponseInterceptors(ics ...ResponseInterceptor) Option {
	return func(g *Gateway) { g.OnResponse(ics...) }
}

// WithGeneration sets the source of the session generation stamped on calls.
func WithGeneration(fn func() uint64) Option {
	return func(g *Gateway) { g.generation = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// NewGateway builds a Gateway for the server origin, e.g.
// "http://127.0.0.1:8000". The /api prefix is appended unless origin
// already ends with it.
func NewGateway(origin string, opts ...Option) (*Gateway, error) {
	u, err := url.Parse(strings.TrimRight(origin, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", origin)
	}
	if !strings.HasSuffix(u.Path, common.APIPrefix) {
		u.Path += common.APIPrefix
	}

	g := &Gateway{
		baseURL: u,
		client:  http.DefaultClient,
		header: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
		generation: func() uint64 { return 0 },
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// OnRequest appends request interceptors. Call it before the first request.
func (g *Gateway) OnRequest(ics ...RequestInterceptor) {
	g.request = append(g.request, ics...)
}

// OnResponse appends response interceptors. Call it before the first request.
func (g *Gateway) OnResponse(ics ...ResponseInterceptor) {
	g.response = append(g.response, ics...)
}

// BaseURL returns the resolved base address including the /api prefix.
func (g *Gateway) BaseURL() string {
	return g.baseURL.String()
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return g.Do(ctx, http.MethodGet, path, nil, query)
}

func (g *Gateway) Post(ctx context.Context, path string, body any) (*Response, error) {
	return g.Do(ctx, http.MethodPost, path, body, nil)
}

func (g *Gateway) Put(ctx context.Context, path string, body any) (*Response, error) {
	return g.Do(ctx, http.MethodPut, path, body, nil)
}

func (g *Gateway) Delete(ctx context.Context, path string) (*Response, error) {
	return g.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do performs one call through both interceptor pipelines.
func (g *Gateway) Do(ctx context.Context, method, path string, body any, query url.Values) (*Response, error) {
	req, err := g.newRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	for _, ic := range g.request {
		if err := ic(ctx, req); err != nil {
			return nil, err
		}
	}

	call := &Call{Request: req, Generation: g.generation()}
	call.Response, call.Err = g.send(req, path, call.Generation)

	for _, ic := range g.response {
		call.Err = ic(ctx, call)
	}

	if call.Err != nil {
		return nil, call.Err
	}
	return call.Response, nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, body any, query url.Values) (*http.Request, error) {
	u := *g.baseURL
	u.Path = g.baseURL.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header = g.header.Clone()
	return req, nil
}

func (g *Gateway) send(req *http.Request, path string, generation uint64) (*Response, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, Path: path, Generation: generation, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, Path: path, Status: resp.StatusCode, Generation: generation, Err: err}
	}

	g.logger.Debug(req.Context(), "api call", "method", req.Method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, fields := parseErrorBody(data)
		return nil, &TransportError{
			Method:     req.Method,
			Path:       path,
			Status:     resp.StatusCode,
			Message:    msg,
			Errors:     fields,
			Body:       data,
			Generation: generation,
		}
	}

	return &Response{Data: data, Status: resp.StatusCode, Header: resp.Header, Generation: generation}, nil
}
