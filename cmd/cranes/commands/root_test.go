package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cranes/cmd/cranes/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "testdata/sample.txt"

// isolate keeps the user's configuration and log file out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CRANES_CONFIG_DIR", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("CRANES_LOGGING_FILE", "false")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := commands.Execute(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		env    map[string]string
		answer string
	}{
		{name: "single_by_default", args: []string{"run", sample}, answer: "MFHDVFL M"},
		{name: "block_flag", args: []string{"run", sample, "--mode", "block"}, answer: "NNHDGFH L"},
		{name: "mode_alias", args: []string{"run", sample, "-m", "9001"}, answer: "NNHDGFH L"},
		{
			name:   "mode_from_env",
			args:   []string{"run", sample},
			env:    map[string]string{"CRANES_SIMULATION_MODE": "block"},
			answer: "NNHDGFH L",
		},
		{
			name:   "flag_beats_env",
			args:   []string{"run", sample, "--mode", "single"},
			env:    map[string]string{"CRANES_SIMULATION_MODE": "block"},
			answer: "MFHDVFL M",
		},
		{
			name:   "configured_input",
			args:   []string{"run"},
			env:    map[string]string{"CRANES_INPUT_DIR": "testdata", "CRANES_INPUT_NAME": "sample.txt"},
			answer: "MFHDVFL M",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			code, stdout, stderr := execute(t, "", tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.answer+"\n", stdout)
		})
	}
}

func TestRunCmd_Stdin(t *testing.T) {
	isolate(t)
	data, err := os.ReadFile(sample)
	require.NoError(t, err)

	code, stdout, stderr := execute(t, string(data), "run", "-")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "MFHDVFL M\n", stdout)
}

func TestRunCmd_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.toml", "[simulation]\nmode = \"block\"\n")

	code, stdout, stderr := execute(t, "", "run", sample, "--config", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "NNHDGFH L\n", stdout)

	// The user file in the config directory is picked up without the flag
	writeFile(t, dir, "config.toml", "[simulation]\nmode = \"block\"\n")
	code, stdout, _ = execute(t, "", "run", sample)
	require.Equal(t, 0, code)
	assert.Equal(t, "NNHDGFH L\n", stdout)
}

func TestRunCmd_JSON(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "run", sample, "--format", "json", "--mode", "block")
	require.Equal(t, 0, code, stderr)

	var got struct {
		RunID  string `json:"run_id"`
		Input  string `json:"input"`
		Mode   string `json:"mode"`
		Answer string `json:"answer"`
		Stacks []struct {
			ID     int    `json:"id"`
			Crates string `json:"crates"`
		} `json:"stacks"`
		Stats struct {
			Lifts      int `json:"lifts"`
			Moved      int `json:"moved"`
			ShortLifts int `json:"short_lifts"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, sample, got.Input)
	assert.Equal(t, "block", got.Mode)
	assert.Equal(t, "NNHDGFH L", got.Answer)
	require.Len(t, got.Stacks, 9)
	assert.Empty(t, got.Stacks[7].Crates)
	assert.Equal(t, 13, got.Stats.Lifts)
	assert.Equal(t, 52, got.Stats.Moved)
	assert.Equal(t, 0, got.Stats.ShortLifts)
}

func TestRunCmd_Metrics(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "run", sample, "--metrics", "--format", "text")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "MFHDVFL M\n\n"), stdout)
	assert.Contains(t, stdout, `cranes_lifts_total{mode="single"} 13`)
	assert.Contains(t, stdout, `cranes_crates_moved_total{mode="single"} 52`)
	assert.Contains(t, stdout, `cranes_runs_total{mode="single",status="ok"} 1`)
}

func TestRunCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		args    []string
		wantErr string
	}{
		{name: "missing_input", args: []string{"run", "testdata/nope.txt"}, wantErr: "cannot open input"},
		{name: "unknown_mode", args: []string{"run", sample, "--mode", "crane"}, wantErr: "unknown mode: crane"},
		{name: "unknown_format", args: []string{"run", sample, "--format", "xml"}, wantErr: "unknown format: xml"},
		{name: "too_many_args", args: []string{"run", "a", "b"}, wantErr: "accepts at most 1 arg"},
		{name: "no_command", args: []string{}, wantErr: "no command specified"},
		{
			name:    "bad_lift",
			input:   "[A]\n 1   2\n\nmove one from 1 to 2\n",
			args:    []string{"run", "-"},
			wantErr: "could not parse quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			code, _, stderr := execute(t, tt.input, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestRunCmd_StructuredError(t *testing.T) {
	isolate(t)
	input := "[A]\n 1   2\n\nmove 1 from 1 to 2\nmove 1 from 3 to 1\n"

	code, stdout, stderr := execute(t, input, "run", "-", "--format", "json")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stderr), &got), stderr)
	assert.Equal(t, "ROUTE_INVALID", got["code"])
	assert.Equal(t, float64(5), got["line"])
}

func TestShowCmd(t *testing.T) {
	isolate(t)
	data, err := os.ReadFile(sample)
	require.NoError(t, err)

	var want strings.Builder
	for _, line := range strings.Split(string(data), "\n")[:9] {
		want.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	code, initial, stderr := execute(t, "", "show", sample)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, want.String(), initial)

	code, final, stderr := execute(t, "", "show", sample, "--after")
	require.Equal(t, 0, code, stderr)
	assert.NotEqual(t, initial, final)
	assert.True(t, strings.HasSuffix(final, " 1   2   3   4   5   6   7   8   9\n"), final)
}

func TestShowCmd_YAML(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "show", sample, "--after", "--mode", "block", "--format", "yaml")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "stage: final")
	assert.Contains(t, stdout, "mode: block")
	assert.Contains(t, stdout, "crates: MFDGPCDBL")
}

func TestConfigCmd(t *testing.T) {
	t.Run("effective", func(t *testing.T) {
		isolate(t)
		t.Setenv("CRANES_OUTPUT_METRICS", "true")

		code, stdout, stderr := execute(t, "", "config", "--mode", "block")
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "[simulation]")
		assert.Contains(t, stdout, "mode = 'block'")
		assert.Contains(t, stdout, "metrics = true")
	})

	t.Run("sample", func(t *testing.T) {
		isolate(t)

		code, stdout, stderr := execute(t, "", "config", "--sample")
		require.Equal(t, 0, code, stderr)
		assert.Contains(t, stdout, "[simulation]")
		assert.Contains(t, stdout, `# mode = "single"`)
	})

	t.Run("invalid_file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, dir, "config.toml", "[simulation]\nmode = \"sideways\"\n")

		code, _, stderr := execute(t, "", "config")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "invalid configuration")
	})
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute(t, "", "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "cranes version dev")

	code, stdout, _ = execute(t, "", "version", "--format", "json")
	require.Equal(t, 0, code)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "dev", got["version"])
}

func TestAboutCmd(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "about")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "# cranes\n"), stdout)
	assert.Contains(t, stdout, "move 1 from 2 to 1")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "help", "topics")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "input-format")
	assert.Contains(t, stdout, "--mode")

	code, stdout, _ = execute(t, "", "help", "metrics")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Overrides output.metrics")

	code, stdout, _ = execute(t, "", "--help")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "COMMANDS:")
	assert.Contains(t, stdout, "run")
}

func TestCompletionCmd(t *testing.T) {
	isolate(t)

	code, stdout, stderr := execute(t, "", "completion", "bash")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "bash completion")

	code, _, _ = execute(t, "", "completion", "tcsh")
	assert.Equal(t, 1, code)
}
