package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"josekle/internal/editor"
	"josekle/internal/record"
)

// readInput читает файл; "-" означает стандартный ввод.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func (a *app) readRecord(cmd *cobra.Command, path string) (*record.Record, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	return record.NewLoader(a.log).Read(string(data))
}

// writeOutput пишет в файл или, если путь пуст, в вывод команды.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// positionFlags: общие флаги команд, которые показывают позицию записи.
type positionFlags struct {
	path   string
	coords string
}

func (p *positionFlags) register(cmd *cobra.Command, defaultCoords string) {
	cmd.Flags().StringVarP(&p.path, "path", "p", "", `position path, e.g. "12" or "3b2n1"`)
	cmd.Flags().StringVar(&p.coords, "coords", defaultCoords, "coordinate style (none|numeric|western|eastern|pierre|corner|eastcor)")
}

// open загружает запись в редактор и переходит к позиции.
func (p *positionFlags) open(a *app, cmd *cobra.Command, file string) (*editor.Editor, error) {
	rec, err := a.readRecord(cmd, file)
	if err != nil {
		return nil, err
	}
	e := editor.New(rec, a.log)
	style, ok := editor.ParseCoordStyle(p.coords)
	if !ok {
		return nil, fmt.Errorf("unknown coordinate style %q", p.coords)
	}
	e.SetCoordStyle(style)
	if p.path != "" {
		e.NavigatePath(p.path)
	}
	return e, nil
}
