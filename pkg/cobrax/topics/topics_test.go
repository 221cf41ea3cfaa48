package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"modes.txt":          {Data: []byte("Information about lift modes")},
		"input-format.md":    {Data: []byte("# Input format\n\nPicture, layout, lifts")},
		"config.txxt":        {Data: []byte("Configuration Guide\n==================")},
		"ignore.json":        {Data: []byte("This should be ignored")},
		"option-mode.txt":    {Data: []byte("Mode flag help")},
		"option-metrics.txt": {Data: []byte("Metrics flag help")},
		"advanced/about.txt": {Data: []byte("About cranes")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"modes", true, "Information about lift modes"},
			{"input-format", true, "# Input format\n\nPicture, layout, lifts"},
			{"config", false, ""}, // .txxt not in defaults
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txt", ".md", ".txxt"}})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("config")
		require.True(t, exists)
		assert.Equal(t, "Configuration Guide\n==================", topic.Content)
		_, exists = tm.GetTopic("ignore")
		assert.False(t, exists)
	})

	t.Run("subdirectories", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("about")
		require.True(t, exists)
		assert.Equal(t, "advanced/about.txt", topic.FilePath)
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"modes", "modes", true},
		{"option-mode", "option-mode", true},
		{"mode", "option-mode", true},
		{"--mode", "option-mode", true},
		{"-mode", "option-mode", true},
		{"--metrics", "option-metrics", true},
		{"-m", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"about", "input-format", "modes", "option-metrics", "option-mode"}, tm.ListTopics())
}

func TestTopicManager_WriteIndex(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "cranes")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  about\n  input-format\n  modes\n")
	assert.Contains(t, out, "Option topics:\n  --metrics\n  --mode\n")
	assert.Contains(t, out, "Use 'cranes help <topic>'")

	buf.Reset()
	New(nil).WriteIndex(&buf, "cranes")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	require.NoError(t, Initialize(rootCmd, testFS()))
	return rootCmd, buf
}

func TestInitialize(t *testing.T) {
	rootCmd, _ := newTestRoot(t)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	completions, directive := helpCmd.ValidArgsFunction(helpCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Contains(t, completions, "topics")
	assert.Contains(t, completions, "run")
	assert.Contains(t, completions, "modes")
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		rootCmd, buf := newTestRoot(t)
		rootCmd.SetArgs([]string{"help", "modes"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "Information about lift modes", buf.String())
	})

	t.Run("topic index", func(t *testing.T) {
		rootCmd, buf := newTestRoot(t)
		rootCmd.SetArgs([]string{"help", "topics"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("command", func(t *testing.T) {
		rootCmd, buf := newTestRoot(t)
		rootCmd.SetArgs([]string{"help", "run"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, buf.String(), "Run something")
	})
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
	assert.Contains(t, r.Render("# Modes\n\nsingle and block", ".md"), "single and block")
}
