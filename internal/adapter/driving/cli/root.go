// Package cli implements the wifictl operator commands with cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/guestwifi/internal/application"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// Deps wires the commands to the rest of the application. Passwords and
// Store are called lazily so commands that do not need them never open the
// configured source or the database.
type Deps struct {
	FileSystem driven.FileSystem
	// CSVPath is the configured override used by validate when no file
	// argument is given.
	CSVPath   string
	Passwords func(ctx context.Context) (*application.PasswordService, error)
	Store     func(ctx context.Context) (driven.RecordStore, error)
}

// NewRootCmd creates the root wifictl command with all subcommands attached.
func NewRootCmd(ver string, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wifictl",
		Short:         "Inspect and maintain the guest WiFi password table",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		NewValidateCmd(deps),
		NewLookupCmd(deps),
		NewDatesCmd(deps),
		NewImportCmd(deps),
	)

	return cmd
}

const rootCmdExample = `  # Check a password file before publishing it
  wifictl validate public/wifi-passwords.csv

  # Show today's password from the configured source
  wifictl lookup

  # Show the password for a specific day
  wifictl lookup --date 24/12/2024

  # List every day that has a password
  wifictl dates

  # Load a password file into the SQLite table
  wifictl import wifi-passwords.csv`
