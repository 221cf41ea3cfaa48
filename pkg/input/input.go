// Package input selects and opens the puzzle input a run reads.
package input

import (
	"io"
	"os"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/arthur-debert/cranes/pkg/logging"
	"github.com/arthur-debert/cranes/pkg/paths"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// Input is an opened puzzle input.
type Input struct {
	io.ReadCloser
	// Name is the path read, or "<stdin>".
	Name string
}

// Options select the input to open.
type Options struct {
	// Arg is the path given on the command line, if any.
	Arg string
	// Name is the input looked up in the inputs directory when Arg is empty.
	Name string
	// Paths resolves the inputs directory.
	Paths paths.Paths
	// Stdin is read when Arg is "-". Defaults to os.Stdin.
	Stdin io.Reader
}

// Open opens the input described by opts.
func Open(opts Options) (*Input, error) {
	logger := logging.GetLogger("input")

	if opts.Arg == Stdin {
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		logger.Debug().Msg("Reading input from stdin")
		return &Input{ReadCloser: io.NopCloser(r), Name: "<stdin>"}, nil
	}

	path, err := Resolve(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputOpen, "cannot open input %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Msg("Opened input")
	return &Input{ReadCloser: f, Name: path}, nil
}

// Resolve returns the path Open would read, without opening it.
func Resolve(opts Options) (string, error) {
	if opts.Arg != "" {
		if err := paths.ValidatePath(opts.Arg); err != nil {
			return "", errors.Wrap(err, errors.ErrInputOpen, "invalid input path")
		}
		return paths.ExpandHome(opts.Arg), nil
	}

	if opts.Paths == nil {
		return "", errors.New(errors.ErrInternal, "no paths to resolve the input name")
	}
	if opts.Name == "" {
		return "", errors.New(errors.ErrInputOpen, "no input given")
	}
	return opts.Paths.InputPath(opts.Name), nil
}
