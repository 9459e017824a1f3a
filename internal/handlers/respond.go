package handlers

import (
	"encoding/json"
	"errors"

	"github.com/casedesk/case-servicing/internal/outcome"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/logger"
)

// statusFromOutcome maps an operation outcome to an HTTP status. The body is
// always the full envelope; only the status line varies.
func statusFromOutcome(o outcome.Outcome, successStatus int) int {
	if o.Success {
		return successStatus
	}
	switch {
	case o.HasExceptionKind(outcome.KindConflict):
		return xhttp.StatusConflict
	case o.HasExceptionKind(outcome.KindRateLimit):
		return xhttp.StatusTooManyRequests
	case o.HasExceptionKind(outcome.KindNotFound):
		return xhttp.StatusNotFound
	default:
		return xhttp.StatusBadRequest
	}
}

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	return json.Unmarshal(ctx.PostBody(), dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeOutcome(ctx *xhttp.RequestCtx, o outcome.Outcome, successStatus int, v any) {
	writeJSON(ctx, statusFromOutcome(o, successStatus), v)
}

// writeBadRequest wraps a transport-level problem (malformed JSON and the like)
// in the same envelope the services produce.
func writeBadRequest(ctx *xhttp.RequestCtx, msg string) {
	o := outcome.New()
	o.AddErrorMessage(msg, false)
	writeJSON(ctx, xhttp.StatusBadRequest, o)
}

// writeFault handles infrastructure errors. The wrap chain goes to the log;
// the caller gets a generic envelope with no internals leaked.
func writeFault(ctx *xhttp.RequestCtx, err error) {
	logger.Error("request failed", "error", err.Error(), "cause", rootCause(err).Error(), "path", string(ctx.Path()))
	o := outcome.New()
	o.AddErrorMessage("an unexpected error occurred", false)
	writeJSON(ctx, xhttp.StatusInternalServerError, o)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}
