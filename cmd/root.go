package cmd

import (
	"fmt"
	"os"

	"WebDev/internal/pkg/config"
	"WebDev/internal/pkg/logger"
	"WebDev/internal/startup"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	envFiles   []string
	properties []string

	// logOutput takes the console logs of commands that print their result
	logOutput zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webdev",
	Short: "JWT and CORS wiring for gin web services",
	Long: `webdev binds the vorbote.web-dev.* settings from a YAML file, the environment
and --property overrides, then wires a JWT helper and a CORS filter for the
features that are enabled.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: conf/webdev.yaml or webdev.yaml if present)")
	flags.StringSliceVar(&envFiles, "env-file", nil, "Dotenv files to load before reading the environment (default: .env if present)")
	flags.StringArrayVarP(&properties, "property", "p", nil, "Property override as key=value, e.g. vorbote.web-dev.jwt.enabled=true")
}

// options collects the property sources selected on the command line
func options() (config.Options, error) {
	props, err := config.ParseProperties(properties)
	if err != nil {
		return config.Options{}, err
	}

	return config.Options{
		ConfigPath: configPath,
		EnvFiles:   envFiles,
		Properties: props,
	}, nil
}

// logToStderr keeps stdout for the command's own output
func logToStderr() {
	logger.SetConsole(logOutput)
	startup.SetupDefaultLogger()
}
