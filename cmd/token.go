package cmd

import (
	"errors"
	"fmt"
	"time"

	"WebDev/internal/startup"

	"github.com/spf13/cobra"
)

var (
	tokenSubject  string
	tokenAudience []string
	tokenTTL      time.Duration
	tokenClaims   map[string]string
)

// errJWTDisabled is returned by token when no helper was wired
var errJWTDisabled = errors.New("jwt is disabled, set vorbote.web-dev.jwt.enabled=true")

// tokenCmd issues a token with the configured JWT helper, for local testing
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a JWT with the configured algorithm, secret and issuer",
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

		util := application.Components().AccessKeyUtil
		if util == nil {
			return errJWTDisabled
		}

		payload := make(map[string]any, len(tokenClaims))
		for k, v := range tokenClaims {
			payload[k] = v
		}

		token, err := util.CreateToken(tokenSubject, tokenAudience, tokenTTL, payload)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	flags := tokenCmd.Flags()
	flags.StringVarP(&tokenSubject, "subject", "s", "", "Token subject")
	flags.StringSliceVarP(&tokenAudience, "audience", "a", nil, "Token audience")
	flags.DurationVar(&tokenTTL, "ttl", time.Hour, "Time until the token expires")
	flags.StringToStringVar(&tokenClaims, "claim", nil, "Custom claims as key=value")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(tokenCmd)
}
