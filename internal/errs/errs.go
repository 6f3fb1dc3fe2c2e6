// Package errs defines the error kinds of the blog service.
//
// Two families live here:
//   - domain kinds returned by the service layer (NotFoundError,
//     ReferenceError), tested with errors.Is against ErrNotFound and
//     ErrReferenceMissing;
//   - HTTPError, the JSON shape every failed API call is rendered as.
//
// FromDomain bridges the first family into the second.
package errs
