package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/fsdevblog/bulkmeta/internal/tokens"
	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID uint
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a JWT for an admin user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := services.ParseRole(role); !ok {
				return fmt.Errorf("unknown role `%s`", role)
			}
			if userID == 0 {
				return errors.New("--user-id must be positive")
			}

			appConf, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err //nolint:wrapcheck
			}
			if appConf.JWTSecret == "" {
				return errors.New("jwt secret is not configured, set JWT_SECRET or --jwt-secret")
			}

			token, err := tokens.GenerateActorJWT(userID, role, ttl, []byte(appConf.JWTSecret))
			if err != nil {
				return err //nolint:wrapcheck
			}

			if opts.jsonOutput {
				return printJSON(opts.out, map[string]string{"token": token})
			}
			_, _ = fmt.Fprintln(opts.out, token)
			return nil
		},
	}

	cmd.Flags().UintVar(&userID, "user-id", 0, "ID of the admin user")
	cmd.Flags().StringVar(&role, "role", string(services.RoleEditor), "Role of the admin user")
	cmd.Flags().DurationVar(&ttl, "ttl", config.DefaultTokenTTL, "Token lifetime")
	return cmd
}
