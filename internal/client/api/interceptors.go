package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/vetclinic/internal/common"
	"github.com/dmitrijs2005/vetclinic/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the current bearer token ("" when there is none).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UnauthorizedHandler tears down the session after a 401. generation is the
// session generation the failing request was issued under.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context, generation uint64)
}

// WithBearerToken attaches "Authorization: Bearer <token>" when src has a
// token. A failing or empty source leaves the request unauthenticated.
func WithBearerToken(src TokenSource, log logging.Logger) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		token, err := src.Token(ctx)
		if err != nil {
			log.Warn(ctx, "token read failed, sending request unauthenticated", "error", err)
			return nil
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		}
		return nil
	}
}

// WithRequestID sets X-Request-ID to a fresh UUID unless already present.
func WithRequestID() RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		if req.Header.Get(common.RequestIDHeaderName) == "" {
			req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		}
		return nil
	}
}

// OnUnauthorized calls h once for every authenticated request that failed
// with 401, then hands the original error back to the caller. Requests sent
// without credentials (a failed login, for instance) are left alone.
func OnUnauthorized(h UnauthorizedHandler) ResponseInterceptor {
	return func(ctx context.Context, call *Call) error {
		if call.Err == nil || !errors.Is(call.Err, ErrUnauthorized) {
			return call.Err
		}
		if call.Request.Header.Get(common.AuthorizationHeaderName) == "" {
			return call.Err
		}
		h.HandleUnauthorized(ctx, call.Generation)
		return call.Err
	}
}

// LogFailures logs failed calls at warn level.
func LogFailures(log logging.Logger) ResponseInterceptor {
	return func(ctx context.Context, call *Call) error {
		if call.Err != nil {
			log.Warn(ctx, "api call failed",
				"method", call.Request.Method,
				"url", call.Request.URL.String(),
				"status", StatusOf(call.Err),
				"request_id", call.Request.Header.Get(common.RequestIDHeaderName),
				"error", call.Err)
		}
		return call.Err
	}
}
