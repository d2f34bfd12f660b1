package graph

import "github.com/gomlx/go-mpsgraph/internal/bridge"

// RNNInputs are the tensors of a recurrent layer. Source is [T, N, I] and
// RecurrentWeight is required; every other tensor is optional.
type RNNInputs struct {
	Source          *Tensor
	RecurrentWeight *Tensor
	InputWeight     *Tensor
	Bias            *Tensor
	InitState       *Tensor
	// InitCell is only used by LSTM.
	InitCell *Tensor
	Mask     *Tensor
	// Peephole is only used by LSTM.
	Peephole *Tensor
	// SecondaryBias is only used by GRU with ResetAfter.
	SecondaryBias *Tensor
}

// SingleGateRNNDescriptor configures SingleGateRNN.
type SingleGateRNNDescriptor struct {
	Reverse       bool
	Bidirectional bool
	// Training makes the op also return the pre-activation states needed by
	// the gradient.
	Training   bool
	Activation RNNActivation
}

func (d *SingleGateRNNDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &SingleGateRNNDescriptor{Activation: RNNActivationRelu}
	}
	n := newNativeWith("MPSGraphSingleGateRNNDescriptor", "descriptor")
	n.setBool("setReverse:", d.Reverse)
	n.setBool("setBidirectional:", d.Bidirectional)
	n.setBool("setTraining:", d.Training)
	n.setUint("setActivation:", d.Activation.enumValue())
	return n.done()
}

// LSTMDescriptor configures LSTM. Start from DefaultLSTMDescriptor: the zero
// value has every activation set to None.
type LSTMDescriptor struct {
	Reverse       bool
	Bidirectional bool
	Training      bool
	// ProduceCell also returns the cell state of every time step.
	ProduceCell bool
	// ForgetGateLast orders the gates i, z, f, o instead of i, f, z, o.
	ForgetGateLast       bool
	InputGateActivation  RNNActivation
	ForgetGateActivation RNNActivation
	CellGateActivation   RNNActivation
	OutputGateActivation RNNActivation
	Activation           RNNActivation
}

// DefaultLSTMDescriptor returns the standard LSTM: sigmoid gates and tanh
// cell and output activations.
func DefaultLSTMDescriptor() *LSTMDescriptor {
	return &LSTMDescriptor{
		InputGateActivation:  RNNActivationSigmoid,
		ForgetGateActivation: RNNActivationSigmoid,
		CellGateActivation:   RNNActivationTanh,
		OutputGateActivation: RNNActivationSigmoid,
		Activation:           RNNActivationTanh,
	}
}

func (d *LSTMDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = DefaultLSTMDescriptor()
	}
	n := newNativeWith("MPSGraphLSTMDescriptor", "descriptor")
	n.setBool("setReverse:", d.Reverse)
	n.setBool("setBidirectional:", d.Bidirectional)
	n.setBool("setTraining:", d.Training)
	n.setBool("setProduceCell:", d.ProduceCell)
	n.setBool("setForgetGateLast:", d.ForgetGateLast)
	n.setUint("setInputGateActivation:", d.InputGateActivation.enumValue())
	n.setUint("setForgetGateActivation:", d.ForgetGateActivation.enumValue())
	n.setUint("setCellGateActivation:", d.CellGateActivation.enumValue())
	n.setUint("setOutputGateActivation:", d.OutputGateActivation.enumValue())
	n.setUint("setActivation:", d.Activation.enumValue())
	return n.done()
}

// GRUDescriptor configures GRU. Start from DefaultGRUDescriptor.
type GRUDescriptor struct {
	Reverse        bool
	Bidirectional  bool
	Training       bool
	ResetGateFirst bool
	// ResetAfter applies the reset gate after the recurrent matrix
	// multiplication (the cuDNN variant).
	ResetAfter           bool
	FlipZ                bool
	UpdateGateActivation RNNActivation
	ResetGateActivation  RNNActivation
	OutputGateActivation RNNActivation
}

// DefaultGRUDescriptor returns the standard GRU: sigmoid update and reset
// gates and a tanh output gate.
func DefaultGRUDescriptor() *GRUDescriptor {
	return &GRUDescriptor{
		UpdateGateActivation: RNNActivationSigmoid,
		ResetGateActivation:  RNNActivationSigmoid,
		OutputGateActivation: RNNActivationTanh,
	}
}

func (d *GRUDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = DefaultGRUDescriptor()
	}
	n := newNativeWith("MPSGraphGRUDescriptor", "descriptor")
	n.setBool("setReverse:", d.Reverse)
	n.setBool("setBidirectional:", d.Bidirectional)
	n.setBool("setTraining:", d.Training)
	n.setBool("setResetGateFirst:", d.ResetGateFirst)
	n.setBool("setResetAfter:", d.ResetAfter)
	n.setBool("setFlipZ:", d.FlipZ)
	n.setUint("setUpdateGateActivation:", d.UpdateGateActivation.enumValue())
	n.setUint("setResetGateActivation:", d.ResetGateActivation.enumValue())
	n.setUint("setOutputGateActivation:", d.OutputGateActivation.enumValue())
	return n.done()
}

// SingleGateRNN runs a simple recurrent layer. It returns the state of every
// time step, plus the training states when desc.Training is set.
func (g *Graph) SingleGateRNN(in RNNInputs, desc *SingleGateRNNDescriptor) []*Tensor {
	return g.ops("rnn", "singleGateRNNWithSourceTensor:recurrentWeight:inputWeight:bias:initState:mask:descriptor:name:",
		in.Source, in.RecurrentWeight, opt(in.InputWeight), opt(in.Bias), opt(in.InitState), opt(in.Mask), desc)
}

// SingleGateRNNGradients returns the gradients of SingleGateRNN with
// respect to source, recurrent weight and, when given, input weight, bias
// and initial state. zState is the training output of the forward op.
func (g *Graph) SingleGateRNNGradients(in RNNInputs, sourceGradient, zState, stateGradient *Tensor, desc *SingleGateRNNDescriptor) []*Tensor {
	return g.ops("rnn_grad", "singleGateRNNGradientsWithSourceTensor:recurrentWeight:sourceGradient:zState:stateGradient:inputWeight:bias:initState:mask:descriptor:name:",
		in.Source, in.RecurrentWeight, sourceGradient, zState, opt(stateGradient), opt(in.InputWeight), opt(in.Bias), opt(in.InitState), opt(in.Mask), desc)
}

// LSTM runs a long short-term memory layer. It returns the states, the cell
// states and, in training mode, the gate values.
func (g *Graph) LSTM(in RNNInputs, desc *LSTMDescriptor) []*Tensor {
	return g.ops("lstm", "LSTMWithSourceTensor:recurrentWeight:inputWeight:bias:initState:initCell:mask:peephole:descriptor:name:",
		in.Source, in.RecurrentWeight, opt(in.InputWeight), opt(in.Bias), opt(in.InitState), opt(in.InitCell), opt(in.Mask), opt(in.Peephole), desc)
}

// GRU runs a gated recurrent unit layer. It returns the states and, in
// training mode, the gate values.
func (g *Graph) GRU(in RNNInputs, desc *GRUDescriptor) []*Tensor {
	return g.ops("gru", "GRUWithSourceTensor:recurrentWeight:inputWeight:bias:initState:mask:secondaryBias:descriptor:name:",
		in.Source, in.RecurrentWeight, opt(in.InputWeight), opt(in.Bias), opt(in.InitState), opt(in.Mask), opt(in.SecondaryBias), desc)
}
