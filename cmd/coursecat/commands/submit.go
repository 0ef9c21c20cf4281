package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"coursecat/internal/domain"
	"coursecat/internal/query"
)

func submitCmd() *cobra.Command {
	var (
		d      domain.SubmissionDraft
		course int
		noWait bool
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an assignment for an enrolled course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.CourseID = domain.CourseID(course)
			p, err := appCtx.Catalog.SubmitAssignment(cmd.Context(), d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if noWait {
				fmt.Fprintf(out, "Submitting assignment (%s)\n", p.State())
				return nil
			}
			sub, err := p.Wait(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Assignment submitted successfully!\n  %s  %s\n  receipt id %s\n",
				sub.Course, sub.SubmittedAt, sub.ID)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&course, "course", 0, "enrolled course id")
	fl.StringVar(&d.Title, "title", "", "assignment title, at least 3 characters")
	fl.StringVar(&d.Notes, "notes", "", "optional notes")
	fl.StringVar(&d.File, "file", "", "attached file name")
	fl.BoolVar(&noWait, "no-wait", false, "return while the submission is still pending")
	return cmd
}

func submissionsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "List submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs := query.Recent(appCtx.Store.Submissions(), limit)
			if len(subs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No submissions yet.")
				return nil
			}
			return printSubmissions(cmd.OutOrStdout(), subs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n submissions (0 for all)")
	return cmd
}

func printSubmissions(out io.Writer, subs []domain.Submission) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOURSE\tTITLE\tFILE\tSUBMITTED\t")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", s.ID.String()[:8], s.Course, s.Title, s.File, s.SubmittedAt)
	}
	return w.Flush()
}
