// Package script replays YAML operation lists against a vector.
//
// A script looks like:
//
//	name: scenario
//	ops:
//	  - op: push
//	    value: 1
//	  - op: remove
//	    index: 0
//	  - op: shrink
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/uvector"
	"github.com/pavanmanishd/uvector/heap"
)

// Operation names understood by Run.
const (
	OpPush    = "push"
	OpPop     = "pop"
	OpRemove  = "remove"
	OpResize  = "resize"
	OpFill    = "fill"
	OpReserve = "reserve"
	OpShrink  = "shrink"
	OpClear   = "clear"
	OpSet     = "set"
)

var knownOps = map[string]bool{
	OpPush: true, OpPop: true, OpRemove: true, OpResize: true, OpFill: true,
	OpReserve: true, OpShrink: true, OpClear: true, OpSet: true,
}

// ErrUnknownOp indicates a script step with an unrecognized op name.
var ErrUnknownOp = errors.New("script: unknown op")

// Op is one script step. Value, Index and N are read depending on the op.
type Op struct {
	Op    string `yaml:"op"`
	Value int64  `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
	N     int    `yaml:"n,omitempty"`
}

func (o Op) String() string {
	switch o.Op {
	case OpPush:
		return fmt.Sprintf("push %d", o.Value)
	case OpRemove:
		return fmt.Sprintf("remove %d", o.Index)
	case OpSet:
		return fmt.Sprintf("set [%d]=%d", o.Index, o.Value)
	case OpResize, OpReserve:
		return fmt.Sprintf("%s %d", o.Op, o.N)
	case OpFill:
		return fmt.Sprintf("fill %d with %d", o.N, o.Value)
	default:
		return o.Op
	}
}

// Script is a named list of operations.
type Script struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Parse decodes and checks a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, op := range s.Ops {
		if !knownOps[op.Op] {
			return nil, fmt.Errorf("%w: step %d: %q", ErrUnknownOp, i+1, op.Op)
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Step is the outcome of one operation.
type Step struct {
	Op        Op
	Err       error
	Len       int
	Cap       int
	Handle    heap.Ptr
	Relocated bool
	Values    []int64
}

// Run applies every operation in order and records the vector after each.
// Failed operations are recorded and do not stop the run.
func Run(s *Script, v *uvector.Vector[int64]) []Step {
	steps := make([]Step, 0, len(s.Ops))
	for _, op := range s.Ops {
		before := v.Handle()
		err := apply(op, v)
		steps = append(steps, Step{
			Op:        op,
			Err:       err,
			Len:       v.Len(),
			Cap:       v.Cap(),
			Handle:    v.Handle(),
			Relocated: v.Handle() != before,
			Values:    append([]int64(nil), v.Data()...),
		})
	}
	return steps
}

func apply(op Op, v *uvector.Vector[int64]) error {
	switch op.Op {
	case OpPush:
		return v.PushBack(op.Value)
	case OpPop:
		return v.PopBack()
	case OpRemove:
		return v.RemoveAt(op.Index)
	case OpResize:
		return v.Resize(op.N)
	case OpFill:
		return v.ResizeFill(op.N, op.Value)
	case OpReserve:
		return v.Reserve(op.N)
	case OpShrink:
		return v.ShrinkToFit()
	case OpClear:
		v.Clear()
		return nil
	case OpSet:
		if op.Index < 0 || op.Index >= v.Len() {
			return fmt.Errorf("%w: index %d, len %d", uvector.ErrOutOfRange, op.Index, v.Len())
		}
		*v.At(op.Index) = op.Value
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
}
