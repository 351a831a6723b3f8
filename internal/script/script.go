// Package script replays YAML operation scripts against a DynamicArray[int].
package script

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/dynarray"
)

// Operation names accepted in the op field of a step.
const (
	OpPushBack = "push_back"
	OpPopBack  = "pop_back"
	OpInsert   = "insert"
	OpErase    = "erase"
	OpResize   = "resize"
	OpReserve  = "reserve"
	OpClear    = "clear"
	OpSet      = "set"
)

// Op is one step of a script. Pos is used by insert, erase and set; Value by
// push_back, insert and set; N by resize and reserve.
type Op struct {
	Op    string `yaml:"op"`
	Pos   int    `yaml:"pos,omitempty"`
	Value int    `yaml:"value,omitempty"`
	N     int    `yaml:"n,omitempty"`
}

// Script is a named list of operations applied to an array that starts with
// Reserve slots of capacity.
type Script struct {
	Name    string `yaml:"name"`
	Reserve int    `yaml:"reserve,omitempty"`
	Ops     []Op   `yaml:"ops"`
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, errors.Wrap(err, "cannot decode script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read script")
	}
	s, err := Parse(data)
	return s, errors.Wrapf(err, "cannot parse script %s", path)
}

// Validate checks what can be checked without running the script: operation
// names and non-negative sizes. Positions depend on the array state and are
// checked by Run.
func (s *Script) Validate() error {
	if s.Reserve < 0 {
		return errors.Errorf("reserve must not be negative, got %d", s.Reserve)
	}
	for i, op := range s.Ops {
		switch op.Op {
		case OpPushBack, OpPopBack, OpInsert, OpErase, OpClear, OpSet:
		case OpResize, OpReserve:
			if op.N < 0 {
				return errors.Errorf("step %d (%s): n must not be negative, got %d", i, op.Op, op.N)
			}
		default:
			return errors.Errorf("step %d: unknown op %q", i, op.Op)
		}
	}
	return nil
}

// Step describes the array after one operation.
type Step struct {
	Index    int
	Op       Op
	Size     int
	Capacity int
	Grew     bool
}

// Observer is notified after every successfully applied operation.
type Observer interface {
	Observe(Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Step)

func (f ObserverFunc) Observe(s Step) { f(s) }

// Run applies the script to a fresh array and returns it. An operation that
// would break a precondition of the array stops the run with an error; the
// array is returned in the state reached before that step.
func Run(s *Script, obs Observer) (*dynarray.DynamicArray[int], error) {
	a := dynarray.NewReserved[int](dynarray.Reserve(s.Reserve))
	for i, op := range s.Ops {
		before := a.Capacity()
		if err := apply(a, op); err != nil {
			return a, errors.Wrapf(err, "step %d (%s)", i, op.Op)
		}
		if obs != nil {
			obs.Observe(Step{
				Index:    i,
				Op:       op,
				Size:     a.Size(),
				Capacity: a.Capacity(),
				Grew:     a.Capacity() > before,
			})
		}
	}
	return a, nil
}

func apply(a *dynarray.DynamicArray[int], op Op) error {
	switch op.Op {
	case OpPushBack:
		a.PushBack(op.Value)
	case OpPopBack:
		if a.IsEmpty() {
			return errors.New("array is empty")
		}
		a.PopBack()
	case OpInsert:
		if op.Pos < a.Begin() || op.Pos > a.End() {
			return errors.Errorf("position %d outside [%d,%d]", op.Pos, a.Begin(), a.End())
		}
		a.Insert(op.Pos, op.Value)
	case OpErase:
		if op.Pos < a.Begin() || op.Pos >= a.End() {
			return errors.Errorf("position %d outside [%d,%d)", op.Pos, a.Begin(), a.End())
		}
		a.Erase(op.Pos)
	case OpResize:
		a.Resize(op.N)
	case OpReserve:
		a.Reserve(op.N)
	case OpClear:
		a.Clear()
	case OpSet:
		p, err := a.AtRef(op.Pos)
		if err != nil {
			return err
		}
		*p = op.Value
	default:
		return errors.Errorf("unknown op %q", op.Op)
	}
	return nil
}
