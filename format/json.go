package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cstea/cst"
)

type JSONEncoder struct {
	w    io.Writer
	opts options
}

func NewJSONEncoder(w io.Writer, opts ...Option) *JSONEncoder {
	return &JSONEncoder{w: w, opts: buildOptions(opts)}
}

func (e *JSONEncoder) Encode(source string, outcome cst.Outcome) error {
	text, err := e.MarshalText(source, outcome)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(source string, outcome cst.Outcome) ([]byte, error) {
	return json.MarshalIndent(buildDocument(source, outcome, e.opts), "", "  ")
}
