// Package structured provides machine-readable JSON, YAML and TOML output
package structured

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/cranes/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encoding selects the serialization format.
type Encoding int

const (
	JSON Encoding = iota
	YAML
	TOML
)

func (e Encoding) String() string {
	switch e {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "json"
	}
}

// Renderer writes every value as one document in its encoding.
type Renderer struct {
	output   io.Writer
	encoding Encoding
}

// New creates a new structured renderer
func New(output io.Writer, encoding Encoding) *Renderer {
	return &Renderer{output: output, encoding: encoding}
}

// ErrorDocument is what RenderError encodes.
type ErrorDocument struct {
	Error   string                 `json:"error" yaml:"error" toml:"error"`
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Line    int                    `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// MessageDocument is what RenderMessage encodes.
type MessageDocument struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

// RenderResult encodes result
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError encodes err with its code and input line, if known
func (r *Renderer) RenderError(err error) error {
	doc := ErrorDocument{
		Error: err.Error(),
		Code:  string(errors.GetErrorCode(err)),
	}
	if line, ok := errors.LineOf(err); ok {
		doc.Line = line
	}
	details := errors.GetErrorDetails(err)
	if len(details) > 0 {
		doc.Details = make(map[string]interface{}, len(details))
		for k, v := range details {
			if k != errors.DetailLine {
				doc.Details[k] = v
			}
		}
		if len(doc.Details) == 0 {
			doc.Details = nil
		}
	}
	return r.encode(doc)
}

// RenderMessage encodes a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(MessageDocument{Message: msg})
}

func (r *Renderer) encode(v interface{}) error {
	var (
		out []byte
		err error
	)
	switch r.encoding {
	case YAML:
		out, err = yaml.Marshal(v)
	case TOML:
		out, err = toml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to encode %s", r.encoding)
	}
	if _, err := r.output.Write(out); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write output")
	}
	return nil
}
