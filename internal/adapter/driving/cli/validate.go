package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// NewValidateCmd creates the validate command. It parses a password file
// exactly as the server would and reports the record count and any skipped
// rows.
func NewValidateCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a password CSV file",
		Long: `Parses a password CSV file and reports how many records are usable.

Without a file argument the default locations are searched in order:
GUESTWIFI_CSV_PATH, ./public/wifi-passwords.csv, ./wifi-passwords.csv and
public/wifi-passwords.csv next to the executable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := csvsource.DefaultCandidates(deps.CSVPath)
			if len(args) == 1 {
				candidates = []string{args[0]}
			}
			return runValidate(cmd, deps, candidates)
		},
	}
}

func runValidate(cmd *cobra.Command, deps Deps, candidates []string) error {
	source := csvsource.NewSource(deps.FileSystem, candidates)

	info, err := source.Resolve(cmd.Context())
	if err != nil {
		return describe(err)
	}

	result, err := source.Load(cmd.Context(), info)
	if err != nil {
		return fmt.Errorf("%s: %w", info.Identifier, describe(err))
	}

	printWarnings(cmd, result.Warnings)
	cmd.Printf("%s: %d valid records, %d skipped rows\n", info.Identifier, len(result.Records), len(result.Warnings))
	return nil
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}
}

// describe makes sure an operator-facing error names its error state.
// SourceError already does; anything else is reported as a configuration
// error.
func describe(err error) error {
	var srcErr *model.SourceError
	if errors.As(err, &srcErr) {
		return err
	}
	return fmt.Errorf("%s: %w", model.ErrorStateConfigurationError, err)
}
