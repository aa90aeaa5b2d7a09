//go:build wasm

package main

import (
	"syscall/js"

	"github.com/dhamidi/cstea/bridge"
	"github.com/dhamidi/cstea/cst"
)

var registry = bridge.NewRegistry(bridge.DefaultCapacity)

func errorValue(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}

func handleValue(h bridge.HandleInfo) map[string]interface{} {
	return map[string]interface{}{
		"tree":    h.Tree,
		"node":    h.Node,
		"isToken": h.IsToken,
		"kind":    h.Kind,
		"text":    h.Text,
		"start":   h.Start,
		"end":     h.End,
	}
}

// parse parses a source string.
// JS: csteaParse(source) -> {root: handle} or {errors: [{start, end, message, line, column}]}
func parse(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("source argument required")
	}

	result := registry.Parse(args[0].String())
	if result.Root != nil {
		return map[string]interface{}{"root": handleValue(*result.Root)}
	}

	errs := make([]interface{}, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = map[string]interface{}{
			"start":   e.Start,
			"end":     e.End,
			"message": e.Message,
			"line":    e.Line,
			"column":  e.Column,
		}
	}
	return map[string]interface{}{"errors": errs}
}

// children lists the direct children of a handle.
// JS: csteaChildren(tree, node) -> [handle] or error
func children(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("tree and node arguments required")
	}

	infos, err := registry.Children(args[0].Int(), args[1].Int())
	if err != nil {
		return errorValue(err.Error())
	}

	values := make([]interface{}, len(infos))
	for i, info := range infos {
		values[i] = handleValue(info)
	}
	return values
}

// release drops a tree once the host no longer walks it.
// JS: csteaRelease(tree)
func release(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("tree argument required")
	}
	if err := registry.Release(args[0].Int()); err != nil {
		return errorValue(err.Error())
	}
	return nil
}

// line converts the end of a range to a 1-based line.
// JS: csteaLine(source, start, end) -> int
func line(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorValue("source, start and end arguments required")
	}
	return cst.NewRange(args[1].Int(), args[2].Int()).Line(args[0].String())
}

// column converts the end of a range to a 1-based column.
// JS: csteaColumn(source, start, end) -> int
func column(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorValue("source, start and end arguments required")
	}
	return cst.NewRange(args[1].Int(), args[2].Int()).Column(args[0].String())
}

// dump renders the full tree of a source string.
// JS: csteaDump(source) -> string
func dump(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("source argument required")
	}
	return cst.Dump(args[0].String())
}
