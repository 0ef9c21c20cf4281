package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coursecat/internal/domain"
	"coursecat/internal/report"
	"coursecat/internal/validate"
)

func exportCmd() *cobra.Command {
	var (
		format string
		path   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the session to an xlsx or JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Let anything still pending land first.
			if err := appCtx.Catalog.Drain(cmd.Context()); err != nil {
				return err
			}
			now := time.Now().In(appCtx.Config.Location)
			snap := appCtx.Store.Snapshot()

			format = strings.ToLower(format)
			if path == "" {
				name := fmt.Sprintf("coursecat-%s.%s", now.Format("20060102-150405"), format)
				path = filepath.Join(appCtx.Config.ExportDir, name)
			}

			var err error
			switch format {
			case "xlsx":
				err = report.ExportXLSX(path, snap, now)
			case "json":
				err = report.ExportJSON(path, snap, now)
			default:
				return fmt.Errorf("unknown format %q (want xlsx or json)", format)
			}
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			appCtx.Log.Info("exported %s report to %s", format, path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "xlsx or json")
	cmd.Flags().StringVarP(&path, "out", "o", "", "output file (default in COURSECAT_EXPORT_DIR)")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Create courses from a spreadsheet",
		Long: "Create courses from the Courses sheet (or first sheet) of an xlsx file. " +
			"Every row goes through the create-course validation; rejected rows are reported.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			drafts, skipped, err := report.ImportCourses(args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			for _, s := range skipped {
				fmt.Fprintf(out, "skipped %s\n", s)
			}

			p, rejected := appCtx.Catalog.CreateCourses(cmd.Context(), drafts)
			printRejected(cmd, drafts, rejected)
			if p == nil {
				fmt.Fprintln(out, "No courses imported.")
				return nil
			}
			created, err := p.Wait(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range created {
				fmt.Fprintf(out, "Created course #%d: %s %s\n", c.ID, c.Image, c.Title)
			}
			return nil
		},
	}
}

func printRejected(cmd *cobra.Command, drafts []domain.CourseDraft, rejected map[int]validate.FieldErrors) {
	idx := make([]int, 0, len(rejected))
	for i := range rejected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		fmt.Fprintf(cmd.OutOrStdout(), "rejected %q:\n", drafts[i].Title)
		fields := rejected[i]
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", name, fields[name])
		}
	}
}

func receiptCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "receipt <submission-id>",
		Short: "Render a PDF receipt for a submission",
		Long:  "Render a PDF receipt for a submission. The id may be abbreviated to any unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Catalog.Drain(cmd.Context()); err != nil {
				return err
			}
			sub, err := findSubmission(appCtx.Store.Submissions(), args[0])
			if err != nil {
				return err
			}
			if path == "" {
				path = filepath.Join(appCtx.Config.ExportDir, "receipt-"+sub.ID.String()[:8]+".pdf")
			}
			if err := report.Receipt(path, sub); err != nil {
				return fmt.Errorf("receipt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "", "output file (default in COURSECAT_EXPORT_DIR)")
	return cmd
}

func findSubmission(subs []domain.Submission, prefix string) (domain.Submission, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return domain.Submission{}, fmt.Errorf("submission id required")
	}
	var (
		found domain.Submission
		n     int
	)
	for _, s := range subs {
		if strings.HasPrefix(s.ID.String(), prefix) {
			found = s
			n++
		}
	}
	switch n {
	case 0:
		return domain.Submission{}, fmt.Errorf("no submission matches %q", prefix)
	case 1:
		return found, nil
	default:
		return domain.Submission{}, fmt.Errorf("%d submissions match %q, use a longer id", n, prefix)
	}
}
