package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

// add <section>: append an empty entry and print its id.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "add <section>",
		Short:     "Append an empty entry to a list section",
		Args:      cobra.ExactArgs(1),
		ValidArgs: sectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := domain.ParseSection(args[0])
			if err != nil {
				return err
			}
			res, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.AddEntry{Section: section})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.ID)
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <id> <field> <value>",
		Short: "Update one field of an entry",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := domain.ParseSection(args[0])
			if err != nil {
				return err
			}
			_, err = appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.UpdateEntry{
				Section: section,
				ID:      args[1],
				Field:   args[2],
				Value:   args[3],
			})
			return err
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <section> <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := domain.ParseSection(args[0])
			if err != nil {
				return err
			}
			res, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.RemoveEntry{Section: section, ID: args[1]})
			if err != nil {
				return err
			}
			if !res.Changed {
				fmt.Fprintf(cmd.ErrOrStderr(), "no %s entry with id %s\n", section, args[1])
			}
			return nil
		},
	}
}

func personalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personal <field> <value>",
		Short: "Update a personal info field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.UpdatePersonal{Field: args[0], Value: args[1]})
			return err
		},
	}
}

func pictureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picture <file>",
		Short: "Embed an image file as the profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return <-appCtx.Orchestrator.IngestProfilePicture(cmd.Context(), f)
		},
	}
}

// skill <name> [level]: the level defaults to 3 and is clamped to 1..5.
func skillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skill <name> [level]",
		Short: "Add a skill",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := domain.DefaultLevel
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("level %q: %w", args[1], err)
				}
				level = domain.Level(n)
			}
			res, err := appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.AddSkill{Name: args[0], Level: level})
			if err != nil {
				return err
			}
			if res.ID == "" {
				return fmt.Errorf("skill name is empty")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.ID)
			return nil
		},
	}
}

func levelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level <id> <n>",
		Short: "Change a skill level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("level %q: %w", args[1], err)
			}
			_, err = appCtx.Orchestrator.Dispatch(cmd.Context(), usecase.SetSkillLevel{ID: args[0], Level: domain.Level(n)})
			return err
		},
	}
}

func sectionNames() []string {
	names := make([]string, 0, len(domain.ListSections))
	for _, s := range domain.ListSections {
		names = append(names, string(s))
	}
	return names
}
