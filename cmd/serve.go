package cmd

import (
	"WebDev/internal/startup"
	"WebDev/internal/utils/signal"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server with the wired filters",
	Long: `Start a gin HTTP server with the CORS filter and the JWT bearer middleware
mounted when they are enabled. Stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := options()
		if err != nil {
			return err
		}

		application, err := startup.InitializeApplication(opts)
		if err != nil {
			return err
		}

		builder, serverErr := startup.StartServer(application)
		return signal.HandleSignals(application, builder, serverErr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
