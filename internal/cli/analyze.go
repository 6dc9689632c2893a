package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
	"github.com/vaultpass/passmeter-go/internal/model"
	"github.com/vaultpass/passmeter-go/internal/render"
	"github.com/vaultpass/passmeter-go/internal/service"
)

func newAnalyzeCommand(app *App) *cobra.Command {
	var (
		asJSON      bool
		minStrength string
	)

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Estimate how long a password resists brute force",
		Long: "Analyze reads the password from the argument, from a hidden prompt when stdin\n" +
			"is a terminal, or from the first line of stdin otherwise.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var floor analyzer.Strength
			if minStrength != "" {
				s, err := analyzer.ParseStrength(minStrength)
				if err != nil {
					return err
				}
				floor = s
			}

			password, err := readPassword(app, cmd, args)
			if err != nil {
				return err
			}
			if len([]rune(password)) > model.MaxPasswordLength {
				return errors.Errorf("password must be at most %d characters", model.MaxPasswordLength)
			}

			svc := service.NewAnalyzerService(app.log, nil, nil)
			result := svc.Evaluate(cmd.Context(), password)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(service.AnalysisToResponse(result)); err != nil {
					return err
				}
			} else if err := render.WriteAnalysis(out, result); err != nil {
				return err
			}

			if floor != "" && !result.Strength.AtLeast(floor) {
				return errors.Wrapf(ErrBelowMinimum, "got %s, want at least %s", result.Strength, floor)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	cmd.Flags().StringVar(&minStrength, "min-strength", "", "fail with exit status 2 below this bucket (very-weak..very-strong)")

	return cmd
}

func readPassword(app *App, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if app.IsTerminal != nil && app.IsTerminal() {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := app.ReadPassword()
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
