package cli

import (
	"github.com/spf13/cobra"
)

// NewDatesCmd creates the dates command, which lists every day that has a
// password, oldest first.
func NewDatesCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List the dates that have a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := deps.Passwords(cmd.Context())
			if err != nil {
				return err
			}

			dates, err := svc.AvailableDates(cmd.Context())
			if err != nil {
				return describe(err)
			}

			for _, d := range dates {
				cmd.Println(d)
			}
			return nil
		},
	}
}
