package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"WebDev/internal/pkg/config"
	"WebDev/internal/startup"
	"WebDev/internal/webdev"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showSecret bool
	forceInit  bool
)

const maskedSecret = "******"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved vorbote.web-dev configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := options()
		if err != nil {
			return err
		}

		logToStderr()
		application, err := startup.InitializeApplication(opts)
		if err != nil {
			return err
		}
		defer application.Shutdown()

		return writeResolved(cmd.OutOrStdout(), application.Service(), showSecret)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "webdev.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if !forceInit {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		if err := config.SaveConfig(config.GetDefaultConfig(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

// writeResolved renders the facade's snapshots as YAML under the
// vorbote.web-dev prefix
func writeResolved(w io.Writer, service webdev.Service, showSecret bool) error {
	jwtInfo := service.JwtConfigurationInfo()
	if !showSecret && jwtInfo.Secret != "" {
		jwtInfo.Secret = maskedSecret
	}

	doc := map[string]any{
		"vorbote": map[string]any{
			"web-dev": webdev.ResolvedConfig{
				JWT:  jwtInfo,
				CORS: service.CorsConfigurationInfo(),
			},
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	return enc.Close()
}

func init() {
	configShowCmd.Flags().BoolVar(&showSecret, "show-secret", false, "Print the JWT secret instead of masking it")
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
