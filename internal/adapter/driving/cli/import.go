package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/guestwifi/internal/adapter/driven/csvsource"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// NewImportCmd creates the import command. The file is validated first and
// the table is only replaced when at least one record is valid.
func NewImportCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the SQLite password table with a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, deps, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, deps Deps, path string) error {
	data, err := deps.FileSystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return describe(model.NewSourceError(model.ErrorStateFileNotFound, "", err))
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	result, err := csvsource.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, describe(err))
	}
	printWarnings(cmd, result.Warnings)

	store, err := deps.Store(cmd.Context())
	if err != nil {
		return err
	}

	if err := store.ReplaceAll(cmd.Context(), result.Records); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	cmd.Printf("Imported %d records from %s\n", len(result.Records), path)
	return nil
}
