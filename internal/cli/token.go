package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passmeter-go/internal/crypto"
)

func newTokenCommand(app *App) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.cfg.AuthEnabled() {
				return errors.New("AUTH_SECRET is not set")
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = app.cfg.AuthTokenTTL
			}
			if ttl <= 0 {
				return errors.New("ttl must be positive")
			}

			token, err := crypto.IssueToken(subject, app.cfg.AuthSecret, ttl)
			if err != nil {
				return errors.Wrap(err, "issue token")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime (defaults to AUTH_TOKEN_TTL)")

	return cmd
}
