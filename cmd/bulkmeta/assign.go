package main

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/bulkmeta/internal/app"
	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/fsdevblog/bulkmeta/internal/services"
	"github.com/spf13/cobra"
)

type assignResult struct {
	services.BatchResult
	Messages []string `json:"messages"`
}

func newAssignCmd(opts *rootOptions) *cobra.Command {
	var (
		actorID  uint
		role     string
		action   string
		postType string
	)

	cmd := &cobra.Command{
		Use:   "assign [flags] ID...",
		Short: "Run a bulk action against the given post IDs",
		Example: `  bulkmeta assign --db sqlite --actor-id 1 --role editor 12 15 18
  bulkmeta assign --seed posts.yaml --json 1 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actorRole, ok := services.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role `%s`", role)
			}
			actor := services.Actor{ID: actorID, Role: actorRole}
			if !actor.Can(services.CapEditPosts) {
				return services.ErrInsufficientPermissions
			}

			appConf, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err //nolint:wrapcheck
			}

			a, err := app.New(cmd.Context(), *appConf)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer a.Close()

			bulk, ok := a.Services().Actions.Get(postType, action)
			if !ok {
				return fmt.Errorf("`%s` for post type `%s`: %w", action, postType, services.ErrUnknownAction)
			}

			res, err := bulk.Run(cmd.Context(), services.BatchRequest{Tokens: args, Actor: actor})
			if err != nil {
				if errors.Is(err, services.ErrNoItemsSubmitted) {
					return errors.New("no posts were selected for the action")
				}
				return err //nolint:wrapcheck
			}

			summary := a.Services().Notices.Summarize(res.Errors)
			if opts.jsonOutput {
				return printJSON(opts.out, assignResult{BatchResult: res, Messages: summary})
			}

			_, _ = fmt.Fprintf(opts.out, "Updated: %d\n", res.Updated)
			for _, line := range summary {
				_, _ = fmt.Fprintf(opts.out, "  %s\n", line)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&actorID, "actor-id", 1, "ID of the acting user")
	cmd.Flags().StringVar(&role, "role", string(services.RoleAdministrator), "Role of the acting user")
	cmd.Flags().StringVar(&action, "action", services.ActionSetFocusKeyword, "Bulk action name")
	cmd.Flags().StringVar(&postType, "post-type", "post", "Post type the action is registered for")
	return cmd
}
