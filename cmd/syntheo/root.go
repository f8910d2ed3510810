package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	app      *app
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "syntheo",
		Short:         "Care-facility data client (residents, meldingen, medication rounds)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts.logLevel)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.app != nil {
				opts.app.close()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(
		newResidentsCmd(opts),
		newNotesCmd(opts),
		newAckCmd(opts),
		newRoundsCmd(opts),
		newRoomsCmd(opts),
		newUsersCmd(opts),
		newWhoamiCmd(opts),
		newRoleCmd(opts),
		newGuardCmd(opts),
		newDashboardCmd(opts),
		newAnnouncementsCmd(opts),
		newChangeRequestsCmd(opts),
		newAuditLogsCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}
