package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
)

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := render.Lookup(appCtx.Orchestrator.Template()).ID()
			for _, t := range render.Templates() {
				mark := " "
				if t.ID == current {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %-10s %s\n", mark, t.ID, t.Name, t.Description)
			}
			return nil
		},
	}
}

// template [id]: without an id, print the selection.
func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template [id]",
		Short: "Show or change the selected template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, render.Lookup(appCtx.Orchestrator.Template()).ID())
				return nil
			}
			resolved := appCtx.Orchestrator.SelectTemplate(cmd.Context(), domain.TemplateID(args[0]))
			if resolved != domain.ParseTemplateID(args[0]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown template %q, rendering with %s\n", args[0], resolved)
			}
			fmt.Fprintln(out, resolved)
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	var (
		outPath  string
		template string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the rendered HTML to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := preview(template)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc.HTML)
				return err
			}
			return os.WriteFile(outPath, []byte(doc.HTML), 0o644)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&template, "template", "t", "", "render with this template without selecting it")
	return cmd
}

func exportCmd() *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the resume to PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := preview(template)
			if err != nil {
				return err
			}
			d, _ := appCtx.Orchestrator.Snapshot()
			res, err := appCtx.Exporter.Export(cmd.Context(), doc, d.PersonalInfo.FullName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "html: %s\n", res.HTMLPath)
			if res.PDFErr != nil {
				return fmt.Errorf("pdf render failed, html kept at %s: %w", res.HTMLPath, res.PDFErr)
			}
			fmt.Fprintf(out, "pdf:  %s\n", res.PDFPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", "", "export with this template without selecting it")
	return cmd
}

// preview renders the current resume, with the selected template unless
// override is set.
func preview(override string) (render.Document, error) {
	if override == "" {
		return appCtx.Orchestrator.Preview()
	}
	d, _ := appCtx.Orchestrator.Snapshot()
	return render.Render(domain.TemplateID(override), d)
}
