package commands

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md topics/*.txt
var topicFiles embed.FS

// Topics returns the help topics shipped with the binary.
func Topics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
