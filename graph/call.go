package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/pkg/errors"
)

// enum is implemented by the MPSGraph enumeration types, marshaled as
// NSUInteger.
type enum interface {
	enumValue() uint64
}

// nativeDescriptor is implemented by the descriptor structs: build creates
// the Objective-C descriptor used for a single message send.
type nativeDescriptor interface {
	build() (*bridge.Object, error)
}

type objecter interface {
	Object() *bridge.Object
}

// call marshals Go values into message arguments. Temporary objects it
// creates are released by release, after the send returns.
type call struct {
	g     *Graph
	temps []*bridge.Object
	// nilInput is set when a tensor input is nil: the op is skipped quietly.
	nilInput bool
	err      error
}

func (c *call) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *call) temp(o *bridge.Object) bridge.Arg {
	c.temps = append(c.temps, o)
	return bridge.Obj(o)
}

func (c *call) release() {
	for _, o := range c.temps {
		o.Release()
	}
	c.temps = nil
}

func (c *call) checkTensor(t *Tensor) {
	if t == nil {
		c.nilInput = true
		return
	}
	if c.g != nil && t.graph != nil && t.graph != c.g {
		c.fail(errors.Errorf("%s belongs to another graph", t))
	}
}

func (c *call) array(objs []*bridge.Object) bridge.Arg {
	arr, err := bridge.Array(objs)
	if err != nil {
		c.fail(err)
		return bridge.Nil()
	}
	return c.temp(arr)
}

func (c *call) dictionary(keys, values []*bridge.Object) bridge.Arg {
	dict, err := bridge.Dictionary(keys, values)
	if err != nil {
		c.fail(err)
		return bridge.Nil()
	}
	return c.temp(dict)
}

func (c *call) arg(v any) bridge.Arg {
	switch v := v.(type) {
	case nil:
		return bridge.Nil()
	case bridge.Arg:
		return v
	case *bridge.Object:
		return bridge.Obj(v)
	case *Tensor:
		c.checkTensor(v)
		if v == nil {
			return bridge.Nil()
		}
		return bridge.Obj(v.obj)
	case []*Tensor:
		objs := make([]*bridge.Object, len(v))
		for i, t := range v {
			c.checkTensor(t)
			if t != nil {
				objs[i] = t.obj
			}
		}
		if c.nilInput {
			return bridge.Nil()
		}
		return c.array(objs)
	case Shape:
		if v == nil {
			return bridge.Nil()
		}
		return c.temp(bridge.Int64Array(v))
	case []int64:
		return c.temp(bridge.Int64Array(v))
	case []int:
		values := make([]int64, len(v))
		for i, x := range v {
			values[i] = int64(x)
		}
		return c.temp(bridge.Int64Array(values))
	case int:
		return bridge.Int(int64(v))
	case int64:
		return bridge.Int(v)
	case int32:
		return bridge.Int(int64(v))
	case uint64:
		return bridge.Uint(v)
	case uint32:
		return bridge.Uint(uint64(v))
	case float64:
		return bridge.Float(v)
	case float32:
		return bridge.Float(float64(v))
	case bool:
		return bridge.Bool(v)
	case DataType:
		return bridge.Uint(uint64(v))
	case enum:
		return bridge.Uint(v.enumValue())
	case string:
		return c.temp(bridge.String(v))
	case nativeDescriptor:
		obj, err := v.build()
		if err != nil {
			c.fail(err)
			return bridge.Nil()
		}
		return c.temp(obj)
	case []*Operation:
		objs := make([]*bridge.Object, len(v))
		for i, op := range v {
			if op == nil {
				c.fail(errors.Errorf("operation %d is nil", i))
				return bridge.Nil()
			}
			objs[i] = op.obj
		}
		return c.array(objs)
	case []*ShapedType:
		objs := make([]*bridge.Object, len(v))
		for i, st := range v {
			if st == nil {
				c.fail(errors.Errorf("shaped type %d is nil", i))
				return bridge.Nil()
			}
			objs[i] = st.obj
		}
		return c.array(objs)
	case []*runtime.TensorData:
		objs := make([]*bridge.Object, len(v))
		for i, td := range v {
			if td == nil {
				c.fail(errors.Errorf("tensor data %d is nil", i))
				return bridge.Nil()
			}
			objs[i] = td.Object()
		}
		return c.array(objs)
	case map[*Tensor]*runtime.TensorData:
		keys, values := make([]*bridge.Object, 0, len(v)), make([]*bridge.Object, 0, len(v))
		for t, td := range v {
			if t == nil || td == nil {
				c.fail(errors.New("feeds hold a nil tensor or tensor data"))
				return bridge.Nil()
			}
			c.checkTensor(t)
			keys, values = append(keys, t.obj), append(values, td.Object())
		}
		return c.dictionary(keys, values)
	case map[*Tensor]*ShapedType:
		keys, values := make([]*bridge.Object, 0, len(v)), make([]*bridge.Object, 0, len(v))
		for t, st := range v {
			if t == nil || st == nil {
				c.fail(errors.New("feeds hold a nil tensor or shaped type"))
				return bridge.Nil()
			}
			c.checkTensor(t)
			keys, values = append(keys, t.obj), append(values, st.obj)
		}
		return c.dictionary(keys, values)
	case objecter:
		return bridge.Obj(v.Object())
	}
	c.fail(errors.Errorf("cannot marshal argument of type %T", v))
	return bridge.Nil()
}

// send marshals args, appends name (unless empty) and sends selector to the
// graph. It returns false if the op was skipped or failed; failures are
// recorded on the graph.
func (g *Graph) send(selector, name string, args []any) (*bridge.Object, bool) {
	c := &call{g: g}
	defer c.release()
	bargs := make([]bridge.Arg, 0, len(args)+1)
	for _, a := range args {
		bargs = append(bargs, c.arg(a))
	}
	if c.nilInput {
		return nil, false
	}
	if c.err != nil {
		g.setErr(errors.WithMessagef(c.err, "building %s", selector))
		return nil, false
	}
	if name != "" {
		bargs = append(bargs, c.temp(bridge.String(name)))
	}
	obj, err := bridge.Send(g.obj, selector, bargs...)
	if err != nil {
		g.setErr(errors.WithMessagef(err, "op %q", name))
		return nil, false
	}
	if obj == nil {
		g.setErr(errors.Errorf("op %q: %s returned nil", name, selector))
		return nil, false
	}
	return obj, true
}

// invoke sends selector to target with marshaled args. Unlike send, a nil
// tensor is an error and nothing is recorded on the graph: it serves the
// execution entry points. g may be nil for loaded executables.
func invoke(g *Graph, target *bridge.Object, selector string, args ...any) (*bridge.Object, error) {
	c := &call{g: g}
	defer c.release()
	bargs := make([]bridge.Arg, 0, len(args))
	for _, a := range args {
		bargs = append(bargs, c.arg(a))
	}
	if c.nilInput {
		return nil, errors.Errorf("%s: nil tensor given", selector)
	}
	if c.err != nil {
		return nil, errors.WithMessage(c.err, selector)
	}
	obj, err := bridge.Send(target, selector, bargs...)
	return obj, errors.WithMessage(err, selector)
}

// op sends a selector ending in "name:" and returns the resulting tensor.
func (g *Graph) op(prefix, selector string, args ...any) *Tensor {
	obj, ok := g.send(selector, g.genName(prefix), args)
	if !ok {
		return nil
	}
	return g.tensor(obj)
}

// ops is like op for selectors returning an NSArray of tensors.
func (g *Graph) ops(prefix, selector string, args ...any) []*Tensor {
	obj, ok := g.send(selector, g.genName(prefix), args)
	if !ok {
		return nil
	}
	return g.tensorArray(obj)
}

// opNoName is op for the few selectors without a name argument.
func (g *Graph) opNoName(selector string, args ...any) *Tensor {
	obj, ok := g.send(selector, "", args)
	if !ok {
		return nil
	}
	return g.tensor(obj)
}

// operation is op for selectors returning an MPSGraphOperation.
func (g *Graph) operation(prefix, selector string, args ...any) *Operation {
	obj, ok := g.send(selector, g.genName(prefix), args)
	if !ok {
		return nil
	}
	return &Operation{obj: obj, graph: g}
}

// pair splits a two-tensor result.
func pair(ts []*Tensor) (*Tensor, *Tensor) {
	if len(ts) < 2 {
		return nil, nil
	}
	return ts[0], ts[1]
}

// opt marks an optional tensor argument: nil passes Objective-C nil instead
// of skipping the op.
func opt(t *Tensor) any {
	if t == nil {
		return nil
	}
	return t
}
