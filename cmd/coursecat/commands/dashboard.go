package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"coursecat/internal/query"
	"coursecat/internal/store"
)

// stats prints the admin dashboard.
func statsCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics and per-course enrollments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			snap := appCtx.Store.Snapshot()
			page := query.Admin(snap, search, appCtx.Seeded, time.Now().In(appCtx.Config.Location))
			sum := page.Summary

			fmt.Fprintf(out, "Revision %s\n", store.Revision(snap))
			fmt.Fprintf(out, "Courses %d (%d new)  Enrollments %d  Submissions %d (%d today)  Avg %.1f per course\n\n",
				sum.TotalCourses, sum.NewCourses, sum.TotalEnrollments,
				sum.TotalSubmissions, sum.SubmittedToday, sum.AvgEnrollment)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOURSE\tCATEGORY\tLEVEL\tENROLLED\t")
			for _, r := range page.Rows {
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%d\t\n", r.ID, r.Image, r.Title, r.Category, r.Level, r.Enrollments)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(page.Submissions) > 0 {
				fmt.Fprintln(out)
				return printSubmissions(out, query.Recent(page.Submissions, 5))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match course titles")
	return cmd
}

// dashboard prints one tab of the student dashboard.
func dashboardCmd() *cobra.Command {
	var (
		tab    string
		search string
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the student dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			page := query.Student(appCtx.Store.Snapshot(), query.Tab(tab), search)

			for _, t := range query.Tabs {
				marker := " "
				if t == page.Tab {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (%d)  ", marker, t, page.Counts[t])
			}
			fmt.Fprint(out, "\n\n")

			switch page.Tab {
			case query.TabEnrolled:
				return printCourses(out, page.Enrolled)
			case query.TabSubmissions:
				if len(page.Submissions) == 0 {
					fmt.Fprintln(out, "No submissions yet.")
					return nil
				}
				return printSubmissions(out, page.Submissions)
			default:
				return printCourses(out, page.Available)
			}
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(query.TabAvailable), "available, enrolled or submissions")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match course titles")
	return cmd
}
