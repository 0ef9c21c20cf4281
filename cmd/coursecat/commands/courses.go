package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"coursecat/internal/domain"
	"coursecat/internal/query"
)

func coursesCmd() *cobra.Command {
	var f domain.Filter
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			page := query.Catalog(appCtx.Store.Snapshot(), f)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOURSE\tLEVEL\tCATEGORY\tDURATION\tINSTRUCTOR\t")
			for _, r := range page.Rows {
				mark := ""
				if r.Enrolled {
					mark = "enrolled"
				}
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Image, r.Title, r.Level, r.Category, r.Duration, r.Instructor, mark)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nShowing %d of %d courses\n", len(page.Rows), page.Total)
			if len(page.Rows) == 0 && page.Filtered {
				fmt.Fprintln(out, "No courses match the current filters.")
			}
			fmt.Fprintf(out, "Categories: %s\n", strings.Join(page.Categories, ", "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "match title or description")
	cmd.Flags().StringVar(&f.Level, "level", domain.All, "level filter")
	cmd.Flags().StringVar(&f.Category, "category", domain.All, "category filter")
	return cmd
}

func createCmd() *cobra.Command {
	var (
		d      domain.CourseDraft
		noWait bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		Long: "Create a course. The course is validated immediately and lands in " +
			"the catalog after the configured create delay.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Catalog.CreateCourse(cmd.Context(), d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if noWait {
				fmt.Fprintf(out, "Creating course %q (%s)\n", strings.TrimSpace(d.Title), p.State())
				return nil
			}
			c, err := p.Wait(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created course #%d: %s %s\n", c.ID, c.Image, c.Title)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&d.Title, "title", "", "course title")
	fl.StringVar(&d.Description, "description", "", "description, at least 20 characters")
	fl.StringVar(&d.Instructor, "instructor", "", "instructor name")
	fl.StringVar(&d.Category, "category", "", "one of: "+strings.Join(domain.Categories, ", "))
	fl.StringVar(&d.Level, "level", "", "Beginner, Intermediate or Advanced")
	fl.StringVar(&d.Duration, "duration", "", "one of: "+strings.Join(domain.Durations, ", "))
	fl.StringVar(&d.Image, "image", "", "display glyph (default "+domain.DefaultImage+")")
	fl.BoolVar(&noWait, "no-wait", false, "return while the course is still pending")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <course-id>",
		Short: "Delete a course and any enrollment in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if appCtx.Catalog.DeleteCourse(cmd.Context(), id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted course #%d\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Course #%d not found, nothing deleted\n", id)
			}
			return nil
		},
	}
}

func printCourses(out io.Writer, courses []domain.Course) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range courses {
		fmt.Fprintf(w, "  #%d\t%s %s\t%s\t%s\t\n", c.ID, c.Image, c.Title, c.Level, c.Instructor)
	}
	return w.Flush()
}
