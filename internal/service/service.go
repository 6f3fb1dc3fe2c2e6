// Package service contains the business logic.
//
// It sits between the handler and repository layers. Every write checks
// the entities it references and persists inside one read-write
// transaction; reads run in a read-only one.
package service

import (
	"context"

	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/rs/zerolog"
)

// log returns the request logger carried by ctx, or the server logger for
// calls made outside a request.
func log(ctx context.Context, s *server.Server) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if s != nil && s.Logger != nil {
		return s.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
