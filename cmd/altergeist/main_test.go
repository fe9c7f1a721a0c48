package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// setupWorkspace runs the test in an empty directory with the bundled
// ontology and no API keys.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	ontology, err := filepath.Abs(filepath.Join("..", "..", "data", "philosophers.ttl"))
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("HUGGINGFACE_TOKEN", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TEMPERATURE", "")
	testChdir(t, t.TempDir())
	return ontology
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	globalOntology, globalStrict, verbose, jsonOutput = "", false, false, false

	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&buf)
	err := root.ExecuteContext(testContext(t))
	return buf.String(), err
}

func TestCLI_ReadCommands(t *testing.T) {
	ontology := setupWorkspace(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "list",
			args:     []string{"list"},
			contains: []string{"Found 9 philosophers", "John Locke", "384 BCE", "Britain"},
		},
		{
			name:     "list verbose shows closure",
			args:     []string{"list", "-v"},
			contains: []string{"Found 9 philosophers", "Closure: ", " inferred in "},
		},
		{
			name:     "show by surname",
			args:     []string{"show", "Locke"},
			contains: []string{"John Locke", "Born:          1632", "Natural Rights", "Freedom [inferred]"},
		},
		{
			name:     "periods",
			args:     []string{"periods"},
			contains: []string{"Found 7 periods", "Classical Athens", "480 BCE to 323 BCE"},
		},
		{
			name:     "query inferred type",
			args:     []string{"query", "-s", "JohnLocke", "-p", "a"},
			contains: []string{"JohnLocke type PoliticalPhilosopher [inferred]", "JohnLocke type Empiricist"},
		},
		{
			name:     "related",
			args:     []string{"related", "Ethics"},
			contains: []string{"Virtue Ethics", "Deontology", "DutyEthics [inferred]"},
		},
		{
			name:     "facts",
			args:     []string{"facts", "ImmanuelKant"},
			contains: []string{"[asserted] ImmanuelKant believesIn Liberty", "[inferred] ImmanuelKant believesIn Freedom"},
		},
		{
			name:     "lookup holders",
			args:     []string{"lookup", "holders", "Liberty"},
			contains: []string{"John Locke", "Immanuel Kant", "John Stuart Mill"},
		},
		{
			name:     "transform",
			args:     []string{"transform", "Locke", "--year", "1500", "--belief", "NaturalRights", "--belief", "Utility"},
			contains: []string{"Born:          1500", "Dropped influences: ThomasHobbes", "1500, Britain, English Restoration", "Ideology preservation: 0.50"},
		},
		{
			name:     "history without archive",
			args:     []string{"history", "Locke"},
			contains: []string{"No archived answers."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append(tt.args, "--ontology", ontology)...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCLI_JSONOutput(t *testing.T) {
	ontology := setupWorkspace(t)

	out, err := executeCommand(t, "query", "-p", "type", "-o", "Empiricist", "--json", "--ontology", ontology)
	require.NoError(t, err)

	var result struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Total)
}

func TestCLI_Errors(t *testing.T) {
	ontology := setupWorkspace(t)

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "unknown philosopher", args: []string{"show", "Nonexistent Name"}, errMsg: "not found"},
		{name: "ambiguous exact", args: []string{"show", "John", "--exact"}, errMsg: "matches several philosophers"},
		{name: "empty pattern", args: []string{"query"}, errMsg: "at least one of"},
		{name: "bad lookup", args: []string{"lookup", "friends", "Kant"}, errMsg: "unknown lookup"},
		{name: "bad year", args: []string{"transform", "Locke", "--year", "soon"}, errMsg: "invalid year"},
		{name: "ask without key", args: []string{"ask", "Locke", "Why?"}, errMsg: "API key is required"},
		{name: "missing ontology", args: []string{"list", "--ontology", "missing.ttl"}, errMsg: "loading ontology"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.name != "missing ontology" {
				args = append(args, "--ontology", ontology)
			}
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCLI_InitAskHistory(t *testing.T) {
	ontology := setupWorkspace(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "c1", "object": "chat.completion", "choices": [{"index": 0,
			"message": {"role": "assistant", "content": "<s>Labour makes property.</s>"}, "finish_reason": "stop"}]}`))
	}))
	defer server.Close()

	out, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")

	_, err = executeCommand(t, "init")
	require.Error(t, err)

	cfg := "ontology:\n  path: " + ontology + "\nllm:\n  api_key: test-key\n  base_url: " + server.URL + "\n  timeout: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(".altergeist", "config.yaml"), []byte(cfg), 0o644))

	out, err = executeCommand(t, "ask", "Locke", "What is property?", "--year", "1900")
	require.NoError(t, err)
	assert.Contains(t, out, "John Locke (1900):")
	assert.Contains(t, out, "Labour makes property.")

	out, err = executeCommand(t, "history", "John Locke")
	require.NoError(t, err)
	assert.Contains(t, out, "What is property?")
	assert.Contains(t, out, "Labour makes property.")
	assert.Contains(t, out, "transformation:")
}

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		level   zapcore.Level
	}{
		{name: "default", verbose: false, level: zapcore.WarnLevel},
		{name: "verbose", verbose: true, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loggerConfig(tt.verbose)
			assert.Equal(t, "json", cfg.Encoding)
			assert.False(t, cfg.Development)
			assert.Equal(t, tt.level, cfg.Level.Level())
		})
	}
}
