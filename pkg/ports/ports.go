package ports

import "context"

// Server is the long-running HTTP port started by the serve command.
type Server interface {
	Start(ctx context.Context, port string) error
}
