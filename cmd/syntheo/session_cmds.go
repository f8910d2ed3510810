package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"syntheo-client/internal/guard"
	"syntheo-client/internal/locale"
	"syntheo-client/internal/overview"
	"syntheo-client/internal/session"
)

// sessionView whoami 输出
type sessionView struct {
	User         any    `json:"user"`
	SelectedRole string `json:"selected_role,omitempty"`
	Error        string `json:"error,omitempty"`
}

func viewOf(s session.Snapshot) sessionView {
	v := sessionView{}
	if s.CurrentUser != nil {
		v.User = s.CurrentUser
	}
	if s.SelectedRole != nil {
		v.SelectedRole = s.SelectedRole.String()
	}
	if s.InitErr != nil {
		v.Error = s.InitErr.Error()
	}
	return v
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user and selected role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, _ := opts.app.initSession(cmd.Context())
			return writeJSON(cmd.OutOrStdout(), viewOf(snap))
		},
	}
}

func newRoleCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage the locally selected role",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select <role>",
		Short: "Select a role (Beheerder, Verpleegster, Verzorgende, Arts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if _, err := a.initSession(cmd.Context()); err != nil {
				return err
			}
			role := locale.RoleFromBackend(args[0])
			if err := a.session.SetSelectedRole(cmd.Context(), role); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), viewOf(a.session.Snapshot()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the selected role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.app.session.ClearRole(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the selected role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, _ := opts.app.initSession(cmd.Context())
			if snap.SelectedRole == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(none)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), snap.SelectedRole.String())
			return nil
		},
	})
	return cmd
}

func newGuardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "guard <screen>",
		Short:     "Evaluate screen access for the current session",
		Args:      cobra.ExactArgs(1),
		ValidArgs: guard.ScreenNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, _ := opts.app.initSession(cmd.Context())
			d, err := guard.Check(args[0], snap)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"screen":   args[0],
				"outcome":  d.Outcome.String(),
				"redirect": d.Redirect,
			})
		},
	}
}

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Load the overview: urgency per room, rounds per dagdeel, unread announcements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			snap, err := a.initSession(cmd.Context())
			if err != nil {
				return err
			}
			d, err := overview.LoadDashboard(cmd.Context(), a.client, snap.CurrentUser.ID, date)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"by_room": d.ByRoom,
				"rounds":  d.Buckets,
				"unread":  d.Unread,
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Date for medication rounds")
	return cmd
}

func newAckCmd(opts *rootOptions) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "ack [note-id...]",
		Short: "Acknowledge meldingen locally (the backend is notified in the background)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			if reset {
				return a.acks.Clear(cmd.Context())
			}
			if err := a.acks.Load(cmd.Context()); err != nil {
				return err
			}
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid note id %q", arg)
				}
				if err := a.acks.Acknowledge(cmd.Context(), id); err != nil {
					return err
				}
			}
			a.acks.Wait()
			return writeJSON(cmd.OutOrStdout(), a.acks.Acknowledged())
		},
	}
	cmd.Flags().BoolVar(&reset, "clear", false, "Forget all local acknowledgements")
	return cmd
}
