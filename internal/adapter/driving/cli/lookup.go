package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// NewLookupCmd creates the lookup command. It resolves a password through
// the configured source the same way the guest page does.
func NewLookupCmd(deps Deps) *cobra.Command {
	var (
		date      string
		yesterday bool
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Show the password for today or a given date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date != "" && yesterday {
				return errors.New("--date and --yesterday are mutually exclusive")
			}
			if date != "" && !model.IsValidDate(date) {
				return fmt.Errorf("invalid date %q (expected DD/MM/YYYY)", date)
			}
			return runLookup(cmd, deps, date, yesterday)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to look up as DD/MM/YYYY (default today)")
	cmd.Flags().BoolVar(&yesterday, "yesterday", false, "look up yesterday's password")

	return cmd
}

func runLookup(cmd *cobra.Command, deps Deps, date string, yesterday bool) error {
	svc, err := deps.Passwords(cmd.Context())
	if err != nil {
		return err
	}

	var result model.LookupResult
	switch {
	case date != "":
		result = svc.PasswordFor(cmd.Context(), date)
	case yesterday:
		result = svc.PasswordFor(cmd.Context(), svc.Calendar().Yesterday())
	default:
		result = svc.CurrentPassword(cmd.Context())
	}

	cmd.Printf("Network:  %s\n", result.NetworkName)
	cmd.Printf("Date:     %s\n", result.Date)
	if result.HasError() {
		return fmt.Errorf("%s: %s", result.ErrorState, result.Error)
	}
	cmd.Printf("Password: %s\n", result.Password)
	return nil
}
