package services

import (
	"context"
	"fmt"

	"github.com/casedesk/case-servicing/internal/outcome"
)

// resolveParent is the single eligibility rule applied before creating a child
// record that references a parent supplied only by id. It classifies the
// lookup three ways and writes any failure into the outcome:
//
//	zero matches  -> not-found error message
//	one match     -> resolved, no error
//	many matches  -> conflict error message plus one Conflict custom exception
//
// The rule only reads from persistence; a non-nil error means the lookup
// itself faulted and must propagate.
func resolveParent[T any](
	ctx context.Context,
	find func(context.Context, string) ([]T, error),
	kind, idLabel, id string,
	out *outcome.Outcome,
) (T, bool, error) {
	var zero T

	matches, err := find(ctx, id)
	if err != nil {
		return zero, false, err
	}

	switch len(matches) {
	case 0:
		out.AddErrorMessage(fmt.Sprintf("No %s found for %s: %s", kind, idLabel, id), false)
		return zero, false, nil
	case 1:
		return matches[0], true, nil
	default:
		msg := fmt.Sprintf("Multiple %ss found for %s: %s", kind, idLabel, id)
		out.AddErrorMessage(msg, false)
		out.AddCustomException(outcome.CustomException{Kind: outcome.KindConflict, Message: msg}, false)
		return zero, false, nil
	}
}
