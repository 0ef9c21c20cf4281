package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursecat/internal/query"
)

func enrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <course-id>",
		Short: "Enroll in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := appCtx.Catalog.Enroll(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in #%d: %s %s\n", c.ID, c.Image, c.Title)
			return nil
		},
	}
}

func unenrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unenroll <course-id>",
		Short: "Drop an enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if appCtx.Catalog.Unenroll(cmd.Context(), id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Unenrolled from #%d\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Not enrolled in #%d\n", id)
			}
			return nil
		},
	}
}

// enrolled prints the enrollment center.
func enrolledCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "enrolled",
		Short: "Show enrolled and available courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			page := query.Enrollment(appCtx.Store.Snapshot(), search)

			fmt.Fprintf(out, "Progress: %.0f%% of %d courses\n\n", page.Progress, page.Total)
			fmt.Fprintf(out, "Enrolled (%d)\n", len(page.Enrolled))
			if err := printCourses(out, page.Enrolled); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nAvailable (%d)\n", len(page.Available))
			return printCourses(out, page.Available)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match course titles")
	return cmd
}
