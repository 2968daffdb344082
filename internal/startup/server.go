package startup

import (
	"WebDev/internal/api/router"
	"WebDev/internal/app"
)

// StartServer builds the router from the wired components and starts the
// HTTP server in the background. The returned channel receives the server's
// exit error.
func StartServer(application *app.Application) (*router.Builder, <-chan error) {
	builder := router.NewBuilder(application.GetConfig(), application.Components()).
		WithAllRoutes()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- builder.Start()
	}()

	return builder, serverErr
}
