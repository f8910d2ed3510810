package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/export"
	"syntheo-client/internal/overview"
)

// optional 未设置的 flag 视为 nil
func optional(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func newResidentsCmd(opts *rootOptions) *cobra.Command {
	var (
		search string
		floor  int
	)
	cmd := &cobra.Command{
		Use:   "residents",
		Short: "List residents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.app.client.ListResidents(cmd.Context(), domain.ResidentFilter{
				Search: search,
				Floor:  optional(cmd, "floor", floor),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Name search")
	cmd.Flags().IntVar(&floor, "floor", 0, "Floor filter")
	return cmd
}

func newNotesCmd(opts *rootOptions) *cobra.Command {
	var (
		resident   int
		category   string
		urgency    string
		unresolved bool
		byResident bool
	)
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List meldingen with local acknowledgement state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			f := domain.NoteFilter{
				ResidentID: optional(cmd, "resident", resident),
				Category:   category,
				Urgency:    urgency,
			}
			if unresolved {
				no := false
				f.IsResolved = &no
			}
			notes, err := a.client.ListNotes(cmd.Context(), f)
			if err != nil {
				return err
			}
			if err := a.acks.Load(cmd.Context()); err != nil {
				return err
			}
			notes = a.acks.Merge(notes)
			if byResident {
				return writeJSON(cmd.OutOrStdout(), overview.UrgencyByResident(notes))
			}
			return writeJSON(cmd.OutOrStdout(), notes)
		},
	}
	cmd.Flags().IntVar(&resident, "resident", 0, "Resident ID")
	cmd.Flags().StringVar(&category, "category", "", "Category (Algemeen, Medisch, Gedrag, Valincident, Voeding, Hygiëne)")
	cmd.Flags().StringVar(&urgency, "urgency", "", "Urgency (Laag, Middel, Hoog, Kritiek)")
	cmd.Flags().BoolVar(&unresolved, "unresolved", false, "Only unresolved meldingen")
	cmd.Flags().BoolVar(&byResident, "by-resident", false, "Print urgency summary per resident")
	return cmd
}

func newRoundsCmd(opts *rootOptions) *cobra.Command {
	var (
		date     string
		dagdeel  string
		status   string
		resident int
		buckets  bool
	)
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "List medication rounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rounds, err := opts.app.client.ListRounds(cmd.Context(), domain.RoundFilter{
				Date:       date,
				Dagdeel:    dagdeel,
				Status:     status,
				ResidentID: optional(cmd, "resident", resident),
			})
			if err != nil {
				return err
			}
			if buckets {
				return writeJSON(cmd.OutOrStdout(), overview.BucketRounds(rounds))
			}
			return writeJSON(cmd.OutOrStdout(), rounds)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dagdeel, "dagdeel", "", "Dagdeel (Ochtend, Middag, Avond, Nacht)")
	cmd.Flags().StringVar(&status, "status", "", "Status (Gegeven, Gemist, Geweigerd, Uitgesteld)")
	cmd.Flags().IntVar(&resident, "resident", 0, "Resident ID")
	cmd.Flags().BoolVar(&buckets, "buckets", false, "Group by dagdeel")
	return cmd
}

func newRoomsCmd(opts *rootOptions) *cobra.Command {
	var floor int
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rooms, err := opts.app.client.ListRooms(cmd.Context(), optional(cmd, "floor", floor))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rooms)
		},
	}
	cmd.Flags().IntVar(&floor, "floor", 0, "Floor filter")
	return cmd
}

func newUsersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List staff accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := opts.app.client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), users)
		},
	}
}

func newAnnouncementsCmd(opts *rootOptions) *cobra.Command {
	var unread bool
	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "List announcements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			items, err := a.client.ListAnnouncements(cmd.Context())
			if err != nil {
				return err
			}
			if !unread {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			snap, err := a.initSession(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]int{
				"unread": overview.UnreadCount(items, snap.CurrentUser.ID),
			})
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "Print the unread count for the current user")
	return cmd
}

func newChangeRequestsCmd(opts *rootOptions) *cobra.Command {
	var (
		status   string
		resident int
	)
	cmd := &cobra.Command{
		Use:   "change-requests",
		Short: "List resident change requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.app.client.ListChangeRequests(cmd.Context(), domain.ChangeRequestFilter{
				Status:     domain.ChangeRequestStatus(status),
				ResidentID: optional(cmd, "resident", resident),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Status (pending, approved, rejected)")
	cmd.Flags().IntVar(&resident, "resident", 0, "Resident ID")
	return cmd
}

func newAuditLogsCmd(opts *rootOptions) *cobra.Command {
	var (
		f    domain.AuditLogFilter
		user int
		xlsx string
	)
	cmd := &cobra.Command{
		Use:   "audit-logs",
		Short: "List audit logs, optionally exporting to an .xlsx file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.UserID = optional(cmd, "user", user)
			page, err := opts.app.client.ListAuditLogs(cmd.Context(), f)
			if err != nil {
				return err
			}
			if xlsx == "" {
				return writeJSON(cmd.OutOrStdout(), page)
			}

			out, err := os.Create(xlsx)
			if err != nil {
				return err
			}
			if err := export.WriteAuditLogs(out, page.Items); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d audit logs to %s\n", len(page.Items), xlsx)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.EntityType, "type", "", "Entity type (auditable_type)")
	cmd.Flags().StringVar(&f.Action, "action", "", "Action")
	cmd.Flags().StringVar(&f.From, "from", "", "From date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "To date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.Page, "page", 1, "Page")
	cmd.Flags().IntVar(&f.PerPage, "per-page", 0, "Items per page")
	cmd.Flags().IntVar(&user, "user", 0, "User ID")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Write the page to this .xlsx file instead of stdout")
	return cmd
}
