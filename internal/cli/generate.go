package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/model"
	"github.com/vaultpass/passmeter-go/internal/render"
	"github.com/vaultpass/passmeter-go/internal/service"
)

type generateFlags struct {
	length    int
	digits    bool
	symbols   bool
	uppercase bool
	lowercase bool
	count     int
	analyze   bool
	json      bool
}

func newGenerateCommand(app *App) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				f.length = app.cfg.DefaultLength
			}
			if err := f.validate(); err != nil {
				return err
			}

			svc := service.NewGeneratorService(app.Generator, crypto.DefaultOptions(), app.log, nil)
			req := model.GenerateRequest{
				Length:    &f.length,
				Digits:    &f.digits,
				Symbols:   &f.symbols,
				Uppercase: &f.uppercase,
				Lowercase: &f.lowercase,
				Analyze:   f.analyze && f.json,
			}

			results := make([]model.GenerateResponse, 0, f.count)
			for i := 0; i < f.count; i++ {
				resp, err := svc.Generate(cmd.Context(), req)
				if err != nil {
					return errors.Wrap(err, "generate password")
				}
				results = append(results, resp)
			}

			out := cmd.OutOrStdout()
			if f.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				if _, err := fmt.Fprintln(out, r.Password); err != nil {
					return err
				}
				if f.analyze {
					if err := render.WriteAnalysis(out, analyzer.Analyze(r.Password)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.length, "length", "l", 16, "password length (defaults to DEFAULT_LENGTH)")
	fl.BoolVar(&f.digits, "digits", true, "include digits 0-9")
	fl.BoolVar(&f.symbols, "symbols", true, "include symbols")
	fl.BoolVar(&f.uppercase, "uppercase", true, "include uppercase letters A-Z")
	fl.BoolVar(&f.lowercase, "lowercase", true, "include lowercase letters a-z")
	fl.IntVarP(&f.count, "count", "n", 1, "number of passwords to generate")
	fl.BoolVar(&f.analyze, "analyze", false, "print a strength analysis for each password")
	fl.BoolVar(&f.json, "json", false, "print results as JSON")

	return cmd
}

func (f generateFlags) validate() error {
	switch {
	case f.length <= 0:
		return errors.New("length must be positive")
	case f.length > model.MaxGenerateLength:
		return errors.Errorf("length must be at most %d", model.MaxGenerateLength)
	case f.count < 1:
		return errors.New("count must be at least 1")
	case !f.digits && !f.symbols && !f.uppercase && !f.lowercase:
		return errors.New("select at least one character class")
	}
	return nil
}
