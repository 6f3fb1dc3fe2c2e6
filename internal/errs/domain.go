package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinels for the two "absent" outcomes of the service layer.
//
// Callers branch with errors.Is:
//
//	if errors.Is(err, errs.ErrNotFound) { ... }
var (
	ErrNotFound         = errors.New("not found")
	ErrReferenceMissing = errors.New("referenced entity does not exist")
)

// NotFoundError reports that a lookup by id found nothing.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReferenceError reports that a create operation named a User or Post
// that does not exist. Nothing was persisted.
type ReferenceError struct {
	Entity string
	ID     int64
}

func NewReferenceMissing(entity string, id int64) *ReferenceError {
	return &ReferenceError{Entity: entity, ID: id}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceMissing
}

// FromDomain converts a domain error into the HTTPError returned to clients.
//
// It returns nil when err is neither a NotFoundError nor a ReferenceError,
// leaving the decision to the caller (usually sqlerr.HandleError).
//
// Codes follow the same <ENTITY>_NOT_FOUND convention sqlerr uses for
// foreign key violations, so clients see one code whichever layer caught it.
func FromDomain(err error) *HTTPError {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		code := entityCode(notFound.Entity, "NOT_FOUND")
		return NewNotFoundError(fmt.Sprintf("%s not found", capitalize(notFound.Entity)), true, &code)
	}

	var missing *ReferenceError
	if errors.As(err, &missing) {
		code := entityCode(missing.Entity, "NOT_FOUND")
		return NewBadRequestError(
			fmt.Sprintf("The referenced %s does not exist", missing.Entity),
			true,
			&code,
			[]FieldError{{Field: missing.Entity + "Id", Error: "does not exist"}},
		)
	}

	return nil
}

// StatusOf is a small helper for logs and tests.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	if mapped := FromDomain(err); mapped != nil {
		return mapped.Status
	}
	return http.StatusInternalServerError
}

func entityCode(entity, action string) string {
	return MakeUpperCaseWithUnderscores(strings.ToUpper(entity) + " " + action)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
