package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Simulate a cargo crane rearranging stacks of crates"
	MsgRunShort        = "Apply the lifts and print the top crate of every stack"
	MsgShowShort       = "Draw the stacks before or after the lifts"
	MsgConfigShort     = "Print the effective configuration"
	MsgAboutShort      = "Describe the puzzle cranes solves"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagMode    = "Crane mode: single or block"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagMetrics = "Print the run counters after the answer"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/cranes/config.toml)"
	MsgFlagAfter   = "Apply the lifts before drawing"
	MsgFlagSample  = "Print a commented sample configuration file"

	// Version output
	MsgVersionFormat = "cranes version %s\n  commit: %s\n  built:  %s"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
