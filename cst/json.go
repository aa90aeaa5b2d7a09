package cst

import "encoding/json"

type jsonRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRange{Start: r.start, End: r.end})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var jr jsonRange
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	*r = NewRange(jr.Start, jr.End)
	return nil
}

type jsonDiagnostic struct {
	Range   Range  `json:"range"`
	Message string `json:"message"`
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDiagnostic{Range: d.Range(), Message: d.Message()})
}

type jsonRoot struct {
	Kind  string `json:"kind"`
	Range Range  `json:"range"`
}

type jsonOutcome struct {
	Root   *jsonRoot    `json:"root,omitempty"`
	Errors []Diagnostic `json:"errors,omitempty"`
}

// MarshalJSON renders {"root": {"kind", "range"}} for a clean parse and
// {"errors": [...]} otherwise. Children are not expanded.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.hasRoot {
		return json.Marshal(jsonOutcome{Root: &jsonRoot{Kind: o.root.Kind(), Range: o.root.Range()}})
	}
	return json.Marshal(jsonOutcome{Errors: o.diagnostics})
}
