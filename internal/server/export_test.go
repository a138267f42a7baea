package server

import (
	"context"
	"net"
)

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	return s.serve(ctx, ln)
}
