package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// Gradients returns d(of)/d(t) for every t in with, keyed by t. of is
// usually a scalar loss.
func (g *Graph) Gradients(of *Tensor, with []*Tensor) map[*Tensor]*Tensor {
	obj, ok := g.send("gradientForPrimaryTensor:withTensors:name:", g.genName("gradients"), []any{of, with})
	if !ok {
		return nil
	}
	defer obj.Release()
	keys, values := bridge.DictionaryEntries(obj)
	grads := make(map[*Tensor]*Tensor, len(keys))
	for i, k := range keys {
		grads[g.tensor(k)] = g.tensor(values[i])
	}
	for _, t := range with {
		if _, found := grads[t]; !found {
			g.setErr(errors.Errorf("Gradients: no gradient for %s", t))
			return nil
		}
	}
	return grads
}

// SGD returns values - learningRate * gradient.
func (g *Graph) SGD(learningRate, values, gradient *Tensor) *Tensor {
	return g.op("sgd", "stochasticGradientDescentWithLearningRateTensor:valuesTensor:gradientTensor:name:",
		learningRate, values, gradient)
}

// ApplySGD returns the operation updating variable in place with one SGD
// step. variable must come from Variable or VariableFrom.
func (g *Graph) ApplySGD(learningRate, variable, gradient *Tensor) *Operation {
	if variable == nil {
		return nil
	}
	variableOp := variable.Operation()
	if variableOp == nil {
		g.setErr(errors.Errorf("ApplySGD: %s has no variable operation", variable))
		return nil
	}
	defer variableOp.Release()
	return g.operation("apply_sgd", "applyStochasticGradientDescentWithLearningRateTensor:variable:gradientTensor:name:",
		learningRate, variableOp, gradient)
}

// AdamState holds the optimizer tensors of one Adam step. MaxVelocity is
// optional and enables AMSGrad.
type AdamState struct {
	Values      *Tensor
	Momentum    *Tensor
	Velocity    *Tensor
	MaxVelocity *Tensor
}

// Adam performs one Adam step with the bias-correction powers beta1^t and
// beta2^t given explicitly. It returns the updated values, momentum,
// velocity and (with MaxVelocity) maximum velocity.
func (g *Graph) Adam(learningRate, beta1, beta2, epsilon, beta1Power, beta2Power *Tensor, state AdamState, gradient *Tensor) AdamState {
	return adamState(g.ops("adam", "adamWithLearningRateTensor:beta1Tensor:beta2Tensor:epsilonTensor:beta1PowerTensor:beta2PowerTensor:valuesTensor:momentumTensor:velocityTensor:maximumVelocityTensor:gradientTensor:name:",
		learningRate, beta1, beta2, epsilon, beta1Power, beta2Power,
		state.Values, state.Momentum, state.Velocity, opt(state.MaxVelocity), gradient))
}

// AdamCurrentRate is Adam with an already bias-corrected learning rate.
func (g *Graph) AdamCurrentRate(currentLearningRate, beta1, beta2, epsilon *Tensor, state AdamState, gradient *Tensor) AdamState {
	return adamState(g.ops("adam", "adamWithCurrentLearningRateTensor:beta1Tensor:beta2Tensor:epsilonTensor:valuesTensor:momentumTensor:velocityTensor:maximumVelocityTensor:gradientTensor:name:",
		currentLearningRate, beta1, beta2, epsilon,
		state.Values, state.Momentum, state.Velocity, opt(state.MaxVelocity), gradient))
}

func adamState(ts []*Tensor) AdamState {
	var s AdamState
	if len(ts) < 3 {
		return s
	}
	s.Values, s.Momentum, s.Velocity = ts[0], ts[1], ts[2]
	if len(ts) > 3 {
		s.MaxVelocity = ts[3]
	}
	return s
}

// Call invokes the executable registered under symbol in the callables of
// the CompilationDescriptor the graph is compiled with. outputTypes declare
// the results.
func (g *Graph) Call(symbol string, inputs []*Tensor, outputTypes []*ShapedType) []*Tensor {
	return g.ops("call", "callSymbolName:inputTensors:outputTypes:name:", symbol, inputs, outputTypes)
}
