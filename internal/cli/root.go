// Package cli реализует командную строку josekle: работа с файлами SGF,
// хранилище записей и головоломка дня.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"josekle/internal/record"
)

// NewRootCmd собирает корневую команду. Если log равен nil, логгер
// создаётся по LOG_LEVEL из конфигурации.
func NewRootCmd(log *zap.SugaredLogger) *cobra.Command {
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:   "josekle",
		Short: "Go game record editor and daily joseki puzzle",
		Long: `josekle reads, normalizes and renders SGF game records,
builds joseki puzzles from their variations and keeps the puzzle of the day.`,
		Version: record.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.close(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", ".env", "path to .env config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newFmtCmd(a),
		newInfoCmd(a),
		newShowCmd(a),
		newPrintCmd(a),
		newCheckCmd(a),
		newJudgeCmd(),
		newExportCmd(a),
		newStoreCmd(a),
		newLoadCmd(a),
		newDeleteCmd(a),
		newImportPuzzlesCmd(a),
		newTodayCmd(a),
		newSubmitCmd(a),
		newShareCmd(a),
	)
	return rootCmd
}

func Execute() int {
	rootCmd := NewRootCmd(nil)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
