package cli

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"josekle/internal/domain/puzzle"
	"josekle/internal/gametree"
	"josekle/internal/record"
	"josekle/internal/sheet"
	"josekle/internal/usecase/puzzles"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		output string
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Normalize an SGF record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				data, err := readInput(cmd, args[0])
				if err != nil {
					return err
				}
				coll, err := record.ParseCollection(string(data))
				if err != nil {
					return err
				}
				return writeOutput(cmd, output, []byte(record.SerializeSGF(coll)+"\n"))
			}
			rec, err := a.readRecord(cmd, args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(record.Compose(rec)+"\n"))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep every game tree and property as parsed, only re-serialize")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show game information and tree statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(cmd, args[0])
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Property", "Value"})
			for _, id := range record.GameInfoIDs {
				if value, ok := rec.Info[id]; ok {
					t.AppendRow(table.Row{id, value})
				}
			}
			t.AppendSeparator()

			width, height := rec.Tree.Size()
			leaves, depth := 0, 0
			rec.Tree.Walk(rec.Tree.Root(), func(n *gametree.Node) bool {
				if n.ChildCount() == 0 {
					leaves++
					depth = max(depth, n.Depth())
				}
				return true
			})
			t.AppendRow(table.Row{"Size", fmt.Sprintf("%dx%d", width, height)})
			t.AppendRow(table.Row{"Nodes", rec.Tree.Len()})
			t.AppendRow(table.Row{"Variations", leaves})
			t.AppendRow(table.Row{"Depth", depth})
			t.AppendRow(table.Row{"Variant style", rec.VariantStyle})
			t.Render()
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var pos positionFlags
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a text diagram of a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := pos.open(a, cmd, args[0])
			if err != nil {
				return err
			}
			node := e.Current()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, renderBoard(node, e.CoordStyle()))
			fmt.Fprintf(out, "Move %d", node.MoveNumber())
			if move, ok := node.Move(); ok {
				fmt.Fprintf(out, ": %s %s", move.Color, moveText(move.Point))
			}
			fmt.Fprintln(out)

			if variants := e.Variants(); len(variants) > 0 {
				moves := make([]string, 0, len(variants))
				for _, v := range variants {
					if move, ok := v.Move(); ok {
						moves = append(moves, move.Color.String()+" "+moveText(move.Point))
					}
				}
				fmt.Fprintf(out, "Variations: %s\n", strings.Join(moves, ", "))
			}
			if comment := node.Comment(); comment != "" {
				fmt.Fprintf(out, "\n%s\n", comment)
			}
			return nil
		},
	}
	pos.register(cmd, "western")
	return cmd
}

func moveText(p gametree.Point) string {
	if p.IsPass() {
		return "pass"
	}
	return record.LettersFromPoint(p)
}

func newPrintCmd(a *app) *cobra.Command {
	var (
		pos    positionFlags
		output string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Render a position as a PDF sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := pos.open(a, cmd, args[0])
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			opts := sheet.Options{Title: title, Coords: e.CoordStyle()}
			if err := sheet.Render(&buf, e.Record(), e.Current(), opts); err != nil {
				return err
			}
			a.log.Infof("pdf sheet rendered, %d bytes", buf.Len())
			return writeOutput(cmd, output, buf.Bytes())
		},
	}
	pos.register(cmd, "western")
	cmd.Flags().StringVarP(&output, "output", "o", "record.pdf", "output PDF file")
	cmd.Flags().StringVar(&title, "title", "", "sheet title (default from players)")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		pos      positionFlags
		solution string
		output   string
	)
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Mark the moves leading to a position against a solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := puzzles.ParseMoves(solution)
			if err != nil {
				return err
			}
			e, err := pos.open(a, cmd, args[0])
			if err != nil {
				return err
			}
			hints := e.Check(want)
			fmt.Fprintln(cmd.OutOrStdout(), hintLine(hints))
			if output != "" {
				return writeOutput(cmd, output, []byte(record.Compose(e.Record())+"\n"))
			}
			return nil
		},
	}
	pos.register(cmd, "none")
	cmd.Flags().StringVarP(&solution, "solution", "s", "", `solution moves, e.g. "4-4, 3-6"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the marked record to file")
	_ = cmd.MarkFlagRequired("solution")
	return cmd
}

func hintLine(hints []puzzle.Hint) string {
	var builder strings.Builder
	for _, h := range hints {
		builder.WriteString(h.String())
	}
	return builder.String()
}

func newJudgeCmd() *cobra.Command {
	var (
		solution string
		size     int
	)
	cmd := &cobra.Command{
		Use:   "judge MOVES",
		Short: "Judge a guess against a solution, allowing the diagonal reflection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := puzzles.ParseMoves(solution)
			if err != nil {
				return err
			}
			guess, err := puzzles.ParseMoves(args[0])
			if err != nil {
				return err
			}
			verdict := puzzles.Judge(guess, want, size)
			fmt.Fprintln(cmd.OutOrStdout(), verdict.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&solution, "solution", "s", "", "solution moves")
	cmd.Flags().IntVar(&size, "size", record.DefaultSize, "board size")
	_ = cmd.MarkFlagRequired("solution")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		output   string
		maxMoves int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "export-puzzles FILE",
		Short: "Export every variation of a joseki tree as a puzzle corpus (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.readRecord(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			list := puzzles.ExportPuzzles(rec.Tree, puzzles.ExportOptions{MaxMoves: maxMoves, Seed: seed})
			data, err := puzzles.EncodePuzzles(list)
			if err != nil {
				return err
			}
			a.log.Infof("exported %d puzzles", len(list))
			return writeOutput(cmd, output, append(data, '\n'))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&maxMoves, "max-moves", 0, "skip variations longer than this (0 means no limit)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (default: random)")
	return cmd
}
