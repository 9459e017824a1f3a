package handlers

import (
	"github.com/casedesk/case-servicing/internal/outcome"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/logger"
)

type RateLimiter interface {
	Allow(key string) (bool, error)
}

// RateLimitMiddleware rejects callers over their request budget with a 429
// envelope. A broken limiter backend fails open so the API stays up.
func RateLimitMiddleware(limiter RateLimiter) xhttp.MiddlewareFunc {
	return func(next xhttp.RequestHandler) xhttp.RequestHandler {
		return func(ctx *xhttp.RequestCtx) {
			ok, err := limiter.Allow(clientKey(ctx))
			if err != nil {
				logger.Warn("rate limiter unavailable", "error", err.Error())
				next(ctx)
				return
			}
			if !ok {
				msg := "request rate limit exceeded"
				o := outcome.New()
				o.AddErrorMessage(msg, false)
				o.AddCustomException(outcome.CustomException{Kind: outcome.KindRateLimit, Message: msg}, false)
				writeJSON(ctx, xhttp.StatusTooManyRequests, o)
				return
			}
			next(ctx)
		}
	}
}

// clientKey prefers the caller's API key so a NATed office doesn't share one
// budget; the remote IP is the fallback for anonymous traffic.
func clientKey(ctx *xhttp.RequestCtx) string {
	if v := ctx.Request.Header.Peek("X-Api-Key"); len(v) > 0 {
		return string(v)
	}
	return ctx.RemoteIP().String()
}
