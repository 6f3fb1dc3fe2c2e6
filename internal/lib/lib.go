// Package lib holds support code that does not belong to a single layer,
// currently the background job queue (lib/job).
package lib
