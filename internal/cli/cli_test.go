package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"josekle/internal/errors"
	"josekle/internal/record"
)

const sample = `(;GM[1]FF[4]SZ[9]PB[Shusaku]PW[Gennan]
;B[ee];W[gc]C[Attach];B[ce]TR[gc])`

// run выполняет команду без файла конфигурации и без внешних хранилищ.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDIS_URL", "")
	t.Setenv("MONGO_URI", "")

	cmd := NewRootCmd(zap.NewNop().Sugar())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.sgf")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	return path
}

func TestFmt_Stdin(t *testing.T) {
	out, err := run(t, "(;SZ[9];B[ee])", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "(;FF[4]GM[1]CA[UTF-8]AP[josekle:"+record.Version+"]SZ[9]ST[0]\n\n;B[ee])\n", out)
}

func TestFmt_OutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.sgf")
	out, err := run(t, "", "fmt", writeSample(t), "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PB[Shusaku]PW[Gennan]")
	assert.Contains(t, string(data), ";W[gc]C[Attach]")
}

func TestFmt_Raw(t *testing.T) {
	in := "junk (;GM[1]XX[kept]\n;B[ee]C[a\\]b])(;W[aa])"
	out, err := run(t, in, "fmt", "--raw", "-")
	require.NoError(t, err)
	assert.Equal(t, "(;GM[1]XX[kept];B[ee]C[a\\]b])(;W[aa])\n", out)
}

func TestFmt_SyntaxError(t *testing.T) {
	_, err := run(t, "(;B[ee]", "fmt", "-")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "", "info", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Shusaku")
	assert.Contains(t, out, "Gennan")
	assert.Contains(t, out, "9x9")
	assert.Contains(t, out, "Nodes")
	assert.Regexp(t, `Variations\s*│\s*1\s`, out)
	assert.Regexp(t, `Depth\s*│\s*3\s`, out)
	assert.Less(t, strings.Index(out, "PB"), strings.Index(out, "PW"))
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "show", writeSample(t), "--path", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Move 2: W gc")
	assert.Contains(t, out, "Variations: B ce")
	assert.Contains(t, out, "Attach")
	// западные координаты пропускают I
	assert.Contains(t, out, "J")
	assert.NotContains(t, out, " I ")
}

func TestShow_BadCoords(t *testing.T) {
	_, err := run(t, "", "show", writeSample(t), "--coords", "klingon")
	assert.ErrorContains(t, err, "klingon")
}

func TestPrint(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sheet.pdf")
	_, err := run(t, "", "print", writeSample(t), "--path", "3", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCheck(t *testing.T) {
	target := filepath.Join(t.TempDir(), "checked.sgf")
	out, err := run(t, "", "check", writeSample(t), "--path", "3", "--solution", "5-5, 3-5, 7-3", "-o", target)
	require.NoError(t, err)
	assert.Equal(t, "🟢🟡🟡\n", out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LB[ee:1]")
}

func TestCheck_BadSolution(t *testing.T) {
	_, err := run(t, "", "check", writeSample(t), "--solution", "5:5")
	assert.ErrorIs(t, err, errors.ErrInvalidMoves)
}

func TestJudge(t *testing.T) {
	out, err := run(t, "", "judge", "--solution", "4-4, 3-6", "4-4, 6-3")
	require.NoError(t, err)
	assert.Equal(t, "🟢🟢🔄 correct!\n", out)

	out, err = run(t, "", "judge", "--solution", "4-4, 3-6", "4-4")
	require.NoError(t, err)
	assert.Equal(t, "🟢 too few moves\n", out)
}

func TestExportPuzzles(t *testing.T) {
	out, err := run(t, "", "export-puzzles", writeSample(t), "--seed", "1")
	require.NoError(t, err)

	var list []struct {
		Number   int `json:"number"`
		Solution []struct {
			X int `json:"x"`
			Y int `json:"y"`
		} `json:"solution"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].Number)
	assert.Len(t, list[0].Solution, 3)
	assert.Equal(t, 5, list[0].Solution[0].X)
}

func TestStorageCommands_NotConfigured(t *testing.T) {
	cases := [][]string{
		{"store", writeSample(t)},
		{"load", "some-key"},
		{"delete", "some-key"},
		{"today"},
		{"submit", "--player", "alice", "4-4"},
		{"share", "--player", "alice"},
	}
	for _, args := range cases {
		t.Run(args[0], func(t *testing.T) {
			_, err := run(t, "", args...)
			assert.ErrorIs(t, err, errors.ErrStorageNotConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
