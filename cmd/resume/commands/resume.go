package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resume as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := appCtx.Orchestrator.Snapshot()
			raw, err := model.EncodeSnapshot(d)
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				return err
			}
			out.WriteByte('\n')
			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

// import <file>: "-" reads the snapshot from stdin.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the resume with a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			d, err := model.DecodeSnapshot(raw, editor.NewID)
			if err != nil {
				return err
			}
			res, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.ReplaceAll{Data: d})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d experiences, %d education, %d projects, %d skills (changed: %t)\n",
				len(d.Experiences), len(d.Education), len(d.Projects), len(d.Skills), res.Changed)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.Reset{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset")
			return nil
		},
	}
}

var errIncomplete = errors.New("resume has blank required fields")

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report required fields that are still blank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := appCtx.Orchestrator.Snapshot()
			out := cmd.OutOrStdout()
			complete := true
			for _, c := range usecase.CheckPresence(d) {
				if c.Valid {
					fmt.Fprintf(out, "%-12s ok\n", c.Section)
					continue
				}
				complete = false
				fmt.Fprintf(out, "%-12s missing %s\n", c.Section, strings.Join(c.Missing, ", "))
			}
			if !complete {
				return errIncomplete
			}
			return nil
		},
	}
}
