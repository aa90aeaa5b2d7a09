package format

import (
	"io"

	"github.com/dhamidi/cstea/cst"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w    io.Writer
	opts options
}

func NewYAMLEncoder(w io.Writer, opts ...Option) *YAMLEncoder {
	return &YAMLEncoder{w: w, opts: buildOptions(opts)}
}

func (e *YAMLEncoder) Encode(source string, outcome cst.Outcome) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(source, outcome, e.opts)); err != nil {
		return err
	}
	return enc.Close()
}
