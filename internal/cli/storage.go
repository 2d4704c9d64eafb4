package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"josekle/internal/record"
)

func newStoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "store FILE",
		Short: "Save a normalized record and print its key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			uc, err := a.recordUseCase(cmd.Context())
			if err != nil {
				return err
			}
			key, err := uc.Import(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newLoadCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "load KEY",
		Short: "Print a stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.recordUseCase(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := uc.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(record.Compose(rec)+"\n"))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.recordUseCase(cmd.Context())
			if err != nil {
				return err
			}
			return uc.Delete(cmd.Context(), args[0])
		},
	}
}

func newImportPuzzlesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import-puzzles FILE",
		Short: "Append an exported puzzle corpus to the puzzle store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			uc, err := a.puzzleUseCase(cmd.Context())
			if err != nil {
				return err
			}
			n, err := uc.ImportPuzzles(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d puzzles\n", n)
			return nil
		},
	}
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the puzzle of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.puzzleUseCase(cmd.Context())
			if err != nil {
				return err
			}
			number := uc.Today()
			p, err := uc.PuzzleOfTheDay(cmd.Context(), number)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Josekle #%d: find the %d-move joseki\n", number, len(p.Solution))
			return nil
		},
	}
}

func newSubmitCmd(a *app) *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "submit MOVES",
		Short: `Submit a guess for today's puzzle, e.g. "4-4, 3-6, 6-3"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.puzzleUseCase(cmd.Context())
			if err != nil {
				return err
			}
			verdict, err := uc.Submit(cmd.Context(), player, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), verdict.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player id")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func newShareCmd(a *app) *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print today's guesses as shareable text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.puzzleUseCase(cmd.Context())
			if err != nil {
				return err
			}
			text, err := uc.Share(cmd.Context(), player)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player id")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}
