package graph

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// Control flow ops take Go closures. MPSGraph calls them synchronously,
// while the op is being added, to build the nested sub-graphs; they may
// call any op of the same graph. A panic inside a closure is recovered and
// recorded as the graph error.

// blockScope owns the blocks of one control flow op and the arrays their
// closures hand to Objective-C, all released once the op is added.
type blockScope struct {
	g      *Graph
	what   string
	keep   []*bridge.Object
	blocks []*bridge.Block
	failed bool
}

func (g *Graph) newBlockScope(what string) *blockScope {
	return &blockScope{g: g, what: what}
}

func (s *blockScope) close() {
	for _, b := range s.blocks {
		b.Close()
	}
	for _, o := range s.keep {
		o.Release()
	}
}

// fail marks the op failed. Only the first error of the graph is kept, so
// a closure that returns nil after one of its ops failed keeps that error.
func (s *blockScope) fail(err error) {
	s.failed = true
	s.g.setErr(errors.WithMessage(err, s.what))
}

// results drops the outputs of an op whose closures failed while MPSGraph
// was running them.
func (s *blockScope) results(out []*Tensor) []*Tensor {
	if s.failed {
		return nil
	}
	return out
}

// block wraps fn as an Objective-C block of the given kind.
func (s *blockScope) block(kind bridge.BlockKind, fn bridge.BlockFunc) *bridge.Object {
	b, err := bridge.NewBlock(kind, func(args []*bridge.Object) (result *bridge.Object) {
		if exception := exceptions.Try(func() { result = fn(args) }); exception != nil {
			s.fail(errors.Errorf("panic in closure: %v", exception))
			return nil
		}
		return result
	})
	if err != nil {
		s.fail(err)
		return nil
	}
	s.blocks = append(s.blocks, b)
	return b.Object
}

// array converts the tensors returned by a closure to an NSArray.
func (s *blockScope) array(ts []*Tensor) *bridge.Object {
	objs := make([]*bridge.Object, 0, len(ts))
	for i, t := range ts {
		if t == nil {
			s.fail(errors.Errorf("closure returned nil for result %d", i))
			objs = objs[:0]
			break
		}
		objs = append(objs, t.obj)
	}
	arr, err := bridge.Array(objs)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.keep = append(s.keep, arr)
	return arr
}

// args interns the NSArray of tensors received by a block.
func (s *blockScope) args(arr *bridge.Object) []*Tensor {
	if arr == nil {
		return nil
	}
	return s.g.tensorArray(arr)
}

// ControlDependency runs fn so that the tensors it creates execute only
// after ops.
func (g *Graph) ControlDependency(ops []*Operation, fn func() []*Tensor) []*Tensor {
	s := g.newBlockScope("ControlDependency")
	defer s.close()
	blk := s.block(bridge.BlockTensors, func([]*bridge.Object) *bridge.Object {
		return s.array(fn())
	})
	if s.failed {
		return nil
	}
	return s.results(g.ops("control_dependency", "controlDependencyWithOperations:dependentBlock:name:", ops, blk))
}

// If evaluates then or els depending on the scalar boolean pred and returns
// the results of the taken branch. Both branches must return tensors of
// matching types; els may be nil when then returns nothing.
func (g *Graph) If(pred *Tensor, then, els func() []*Tensor) []*Tensor {
	if pred == nil {
		return nil
	}
	s := g.newBlockScope("If")
	defer s.close()
	thenBlock := s.block(bridge.BlockTensors, func([]*bridge.Object) *bridge.Object {
		return s.array(then())
	})
	var elseBlock any
	if els != nil {
		elseBlock = s.block(bridge.BlockTensors, func([]*bridge.Object) *bridge.Object {
			return s.array(els())
		})
	}
	if s.failed {
		return nil
	}
	return s.results(g.ops("if", "ifWithPredicateTensor:thenBlock:elseBlock:name:", pred, thenBlock, elseBlock))
}

// While loops over a state initialized with initial. before receives the
// state and returns the scalar boolean condition plus the values passed on:
// to after while the condition holds, or out of the loop as its result when
// it does not. after returns the next state.
func (g *Graph) While(initial []*Tensor,
	before func(state []*Tensor) (cond *Tensor, results []*Tensor),
	after func(results []*Tensor) []*Tensor) []*Tensor {
	s := g.newBlockScope("While")
	defer s.close()
	beforeBlock := s.block(bridge.BlockWhileBefore, func(args []*bridge.Object) *bridge.Object {
		cond, results := before(s.args(args[0]))
		out := args[1]
		defer out.Release()
		for i, r := range results {
			if r == nil {
				s.fail(errors.Errorf("before closure returned nil for result %d", i))
				return nil
			}
			if err := bridge.SendVoid(out, "addObject:", bridge.Obj(r.obj)); err != nil {
				s.fail(err)
				return nil
			}
		}
		if cond == nil {
			s.fail(errors.New("before closure returned a nil condition"))
			return nil
		}
		return cond.obj
	})
	afterBlock := s.block(bridge.BlockTensorsIn, func(args []*bridge.Object) *bridge.Object {
		return s.array(after(s.args(args[0])))
	})
	if s.failed {
		return nil
	}
	return s.results(g.ops("while", "whileWithInitialInputs:before:after:name:", initial, beforeBlock, afterBlock))
}

// For runs body for index = lower; index < upper; index += step, threading
// the loop arguments through it. lower, upper and step are Int32 scalars.
func (g *Graph) For(lower, upper, step *Tensor, initial []*Tensor,
	body func(index *Tensor, args []*Tensor) []*Tensor) []*Tensor {
	s := g.newBlockScope("For")
	defer s.close()
	blk := s.forBody(body)
	if s.failed {
		return nil
	}
	return s.results(g.ops("for", "forLoopWithLowerBound:upperBound:step:initialBodyArguments:body:name:",
		lower, upper, step, initial, blk))
}

// ForN runs body numIterations times, numIterations being an Int32 scalar.
func (g *Graph) ForN(numIterations *Tensor, initial []*Tensor,
	body func(index *Tensor, args []*Tensor) []*Tensor) []*Tensor {
	s := g.newBlockScope("ForN")
	defer s.close()
	blk := s.forBody(body)
	if s.failed {
		return nil
	}
	return s.results(g.ops("for", "forLoopWithNumberOfIterations:initialBodyArguments:body:name:",
		numIterations, initial, blk))
}

func (s *blockScope) forBody(body func(index *Tensor, args []*Tensor) []*Tensor) *bridge.Object {
	return s.block(bridge.BlockForBody, func(args []*bridge.Object) *bridge.Object {
		return s.array(body(s.g.tensor(args[0]), s.args(args[1])))
	})
}
