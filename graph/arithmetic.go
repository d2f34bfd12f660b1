package graph

import "github.com/pkg/errors"

// Element-wise unary and binary ops. Binary ops broadcast their inputs.

// Identity returns x unchanged: z = x.
func (g *Graph) Identity(x *Tensor) *Tensor {
	return g.op("identity", "identityWithTensor:name:", x)
}

// Exp computes element-wise exponential: z = e^x.
func (g *Graph) Exp(x *Tensor) *Tensor {
	return g.op("exp", "exponentWithTensor:name:", x)
}

// Exp2 computes element-wise base-2 exponential: z = 2^x.
func (g *Graph) Exp2(x *Tensor) *Tensor {
	return g.op("exp2", "exponentBase2WithTensor:name:", x)
}

// Exp10 computes element-wise base-10 exponential: z = 10^x.
func (g *Graph) Exp10(x *Tensor) *Tensor {
	return g.op("exp10", "exponentBase10WithTensor:name:", x)
}

// Log computes element-wise natural logarithm: z = log(x).
func (g *Graph) Log(x *Tensor) *Tensor {
	return g.op("log", "logarithmWithTensor:name:", x)
}

// Log2 computes element-wise base-2 logarithm: z = log2(x).
func (g *Graph) Log2(x *Tensor) *Tensor {
	return g.op("log2", "logarithmBase2WithTensor:name:", x)
}

// Log10 computes element-wise base-10 logarithm: z = log10(x).
func (g *Graph) Log10(x *Tensor) *Tensor {
	return g.op("log10", "logarithmBase10WithTensor:name:", x)
}

// Square computes element-wise square: z = x * x.
func (g *Graph) Square(x *Tensor) *Tensor {
	return g.op("square", "squareWithTensor:name:", x)
}

// Sqrt computes element-wise square root: z = sqrt(x).
func (g *Graph) Sqrt(x *Tensor) *Tensor {
	return g.op("sqrt", "squareRootWithTensor:name:", x)
}

// Rsqrt computes element-wise reciprocal square root: z = 1 / sqrt(x).
func (g *Graph) Rsqrt(x *Tensor) *Tensor {
	return g.op("rsqrt", "reciprocalSquareRootWithTensor:name:", x)
}

// Reciprocal computes element-wise reciprocal: z = 1 / x.
func (g *Graph) Reciprocal(x *Tensor) *Tensor {
	return g.op("reciprocal", "reciprocalWithTensor:name:", x)
}

// Abs computes element-wise absolute value: z = |x|.
func (g *Graph) Abs(x *Tensor) *Tensor {
	return g.op("abs", "absoluteWithTensor:name:", x)
}

// AbsSquare computes element-wise squared magnitude: z = |x|^2, also for complex x.
func (g *Graph) AbsSquare(x *Tensor) *Tensor {
	return g.op("abs_square", "absoluteSquareWithTensor:name:", x)
}

// Neg computes element-wise negation: z = -x.
func (g *Graph) Neg(x *Tensor) *Tensor {
	return g.op("neg", "negativeWithTensor:name:", x)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func (g *Graph) Sign(x *Tensor) *Tensor {
	return g.op("sign", "signWithTensor:name:", x)
}

// SignBit reports whether the sign bit of x is set, including for -0.
func (g *Graph) SignBit(x *Tensor) *Tensor {
	return g.op("signbit", "signbitWithTensor:name:", x)
}

// Ceil rounds x up to the nearest integer.
func (g *Graph) Ceil(x *Tensor) *Tensor {
	return g.op("ceil", "ceilWithTensor:name:", x)
}

// Floor rounds x down to the nearest integer.
func (g *Graph) Floor(x *Tensor) *Tensor {
	return g.op("floor", "floorWithTensor:name:", x)
}

// Round rounds x to the nearest integer, half away from zero.
func (g *Graph) Round(x *Tensor) *Tensor {
	return g.op("round", "roundWithTensor:name:", x)
}

// Rint rounds x to the nearest integer, half to even.
func (g *Graph) Rint(x *Tensor) *Tensor {
	return g.op("rint", "rintWithTensor:name:", x)
}

// Trunc rounds x toward zero.
func (g *Graph) Trunc(x *Tensor) *Tensor {
	return g.op("trunc", "truncateWithTensor:name:", x)
}

// Sin computes element-wise sine, x in radians.
func (g *Graph) Sin(x *Tensor) *Tensor {
	return g.op("sin", "sinWithTensor:name:", x)
}

// Cos computes element-wise cosine, x in radians.
func (g *Graph) Cos(x *Tensor) *Tensor {
	return g.op("cos", "cosWithTensor:name:", x)
}

// Tan computes element-wise tangent, x in radians.
func (g *Graph) Tan(x *Tensor) *Tensor {
	return g.op("tan", "tanWithTensor:name:", x)
}

// Sinh computes element-wise hyperbolic sine.
func (g *Graph) Sinh(x *Tensor) *Tensor {
	return g.op("sinh", "sinhWithTensor:name:", x)
}

// Cosh computes element-wise hyperbolic cosine.
func (g *Graph) Cosh(x *Tensor) *Tensor {
	return g.op("cosh", "coshWithTensor:name:", x)
}

// Tanh computes element-wise hyperbolic tangent: z = tanh(x).
func (g *Graph) Tanh(x *Tensor) *Tensor {
	return g.op("tanh", "tanhWithTensor:name:", x)
}

// Asin computes element-wise arcsine, in [-pi/2, pi/2].
func (g *Graph) Asin(x *Tensor) *Tensor {
	return g.op("asin", "asinWithTensor:name:", x)
}

// Acos computes element-wise arccosine, in [0, pi].
func (g *Graph) Acos(x *Tensor) *Tensor {
	return g.op("acos", "acosWithTensor:name:", x)
}

// Atan computes element-wise arctangent, in [-pi/2, pi/2].
func (g *Graph) Atan(x *Tensor) *Tensor {
	return g.op("atan", "atanWithTensor:name:", x)
}

// Asinh computes element-wise inverse hyperbolic sine.
func (g *Graph) Asinh(x *Tensor) *Tensor {
	return g.op("asinh", "asinhWithTensor:name:", x)
}

// Acosh computes element-wise inverse hyperbolic cosine, for x >= 1.
func (g *Graph) Acosh(x *Tensor) *Tensor {
	return g.op("acosh", "acoshWithTensor:name:", x)
}

// Atanh computes element-wise inverse hyperbolic tangent, for |x| < 1.
func (g *Graph) Atanh(x *Tensor) *Tensor {
	return g.op("atanh", "atanhWithTensor:name:", x)
}

// Erf computes the Gauss error function.
func (g *Graph) Erf(x *Tensor) *Tensor {
	return g.op("erf", "erfWithTensor:name:", x)
}

// IsInf returns a Bool tensor, true where x is +Inf or -Inf.
func (g *Graph) IsInf(x *Tensor) *Tensor {
	return g.op("is_inf", "isInfiniteWithTensor:name:", x)
}

// IsFinite returns a Bool tensor, true where x is neither infinite nor NaN.
func (g *Graph) IsFinite(x *Tensor) *Tensor {
	return g.op("is_finite", "isFiniteWithTensor:name:", x)
}

// IsNaN returns a Bool tensor, true where x is NaN.
func (g *Graph) IsNaN(x *Tensor) *Tensor {
	return g.op("is_nan", "isNaNWithTensor:name:", x)
}

// LogicalNot negates a Bool tensor.
func (g *Graph) LogicalNot(x *Tensor) *Tensor {
	return g.op("not", "logicalNOTWithTensor:name:", x)
}

// BitwiseNot flips every bit of an integer tensor.
func (g *Graph) BitwiseNot(x *Tensor) *Tensor {
	return g.op("bitwise_not", "bitwiseNOTWithTensor:name:", x)
}

// PopCount counts the set bits of each element of an integer tensor.
func (g *Graph) PopCount(x *Tensor) *Tensor {
	return g.op("popcount", "bitwisePopulationCountWithTensor:name:", x)
}

// Real returns the real part of a complex tensor.
func (g *Graph) Real(x *Tensor) *Tensor {
	return g.op("real", "realPartOfTensor:name:", x)
}

// Imag returns the imaginary part of a complex tensor.
func (g *Graph) Imag(x *Tensor) *Tensor {
	return g.op("imag", "imaginaryPartOfTensor:name:", x)
}

// Conj returns the complex conjugate of x.
func (g *Graph) Conj(x *Tensor) *Tensor {
	return g.op("conj", "conjugateWithTensor:name:", x)
}

// Add performs element-wise addition: z = x + y.
func (g *Graph) Add(x, y *Tensor) *Tensor {
	return g.op("add", "additionWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Sub performs element-wise subtraction: z = x - y.
func (g *Graph) Sub(x, y *Tensor) *Tensor {
	return g.op("sub", "subtractionWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Mul performs element-wise multiplication: z = x * y.
func (g *Graph) Mul(x, y *Tensor) *Tensor {
	return g.op("mul", "multiplicationWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Div performs element-wise division: z = x / y.
func (g *Graph) Div(x, y *Tensor) *Tensor {
	return g.op("div", "divisionWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// DivNoNaN is Div returning 0 where y is 0.
func (g *Graph) DivNoNaN(x, y *Tensor) *Tensor {
	return g.op("div_no_nan", "divisionNoNaNWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Mod computes the truncated remainder of x / y.
func (g *Graph) Mod(x, y *Tensor) *Tensor {
	return g.op("mod", "moduloWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// FloorMod computes the remainder of x / y with the sign of y.
func (g *Graph) FloorMod(x, y *Tensor) *Tensor {
	return g.op("floor_mod", "floorModuloWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Pow computes element-wise power: z = x^y. A negative x yields NaN on Metal.
func (g *Graph) Pow(x, y *Tensor) *Tensor {
	return g.op("pow", "powerWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Min returns the element-wise minimum of x and y.
func (g *Graph) Min(x, y *Tensor) *Tensor {
	return g.op("min", "minimumWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Max returns the element-wise maximum of x and y.
func (g *Graph) Max(x, y *Tensor) *Tensor {
	return g.op("max", "maximumWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// MinNaN is Min returning NaN if either input is NaN.
func (g *Graph) MinNaN(x, y *Tensor) *Tensor {
	return g.op("min_nan", "minimumWithNaNPropagationWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// MaxNaN is Max returning NaN if either input is NaN.
func (g *Graph) MaxNaN(x, y *Tensor) *Tensor {
	return g.op("max_nan", "maximumWithNaNPropagationWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Equal returns a Bool tensor, true where x == y.
func (g *Graph) Equal(x, y *Tensor) *Tensor {
	return g.op("equal", "equalWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// NotEqual returns a Bool tensor, true where x != y.
func (g *Graph) NotEqual(x, y *Tensor) *Tensor {
	return g.op("not_equal", "notEqualWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Less returns a Bool tensor, true where x < y.
func (g *Graph) Less(x, y *Tensor) *Tensor {
	return g.op("less", "lessThanWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LessEqual returns a Bool tensor, true where x <= y.
func (g *Graph) LessEqual(x, y *Tensor) *Tensor {
	return g.op("less_equal", "lessThanOrEqualWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Greater returns a Bool tensor, true where x > y.
func (g *Graph) Greater(x, y *Tensor) *Tensor {
	return g.op("greater", "greaterThanWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// GreaterEqual returns a Bool tensor, true where x >= y.
func (g *Graph) GreaterEqual(x, y *Tensor) *Tensor {
	return g.op("greater_equal", "greaterThanOrEqualWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalAnd computes x AND y on Bool tensors.
func (g *Graph) LogicalAnd(x, y *Tensor) *Tensor {
	return g.op("and", "logicalANDWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalOr computes x OR y on Bool tensors.
func (g *Graph) LogicalOr(x, y *Tensor) *Tensor {
	return g.op("or", "logicalORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalNand computes NOT (x AND y) on Bool tensors.
func (g *Graph) LogicalNand(x, y *Tensor) *Tensor {
	return g.op("nand", "logicalNANDWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalNor computes NOT (x OR y) on Bool tensors.
func (g *Graph) LogicalNor(x, y *Tensor) *Tensor {
	return g.op("nor", "logicalNORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalXor computes x XOR y on Bool tensors.
func (g *Graph) LogicalXor(x, y *Tensor) *Tensor {
	return g.op("xor", "logicalXORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// LogicalXnor computes NOT (x XOR y) on Bool tensors.
func (g *Graph) LogicalXnor(x, y *Tensor) *Tensor {
	return g.op("xnor", "logicalXNORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// BitwiseAnd computes the bitwise x & y of integer tensors.
func (g *Graph) BitwiseAnd(x, y *Tensor) *Tensor {
	return g.op("bitwise_and", "bitwiseANDWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// BitwiseOr computes the bitwise x | y of integer tensors.
func (g *Graph) BitwiseOr(x, y *Tensor) *Tensor {
	return g.op("bitwise_or", "bitwiseORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// BitwiseXor computes the bitwise x ^ y of integer tensors.
func (g *Graph) BitwiseXor(x, y *Tensor) *Tensor {
	return g.op("bitwise_xor", "bitwiseXORWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// ShiftLeft shifts the bits of x left by y.
func (g *Graph) ShiftLeft(x, y *Tensor) *Tensor {
	return g.op("shift_left", "leftShiftWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// ShiftRight shifts the bits of x right by y, arithmetic for signed types.
func (g *Graph) ShiftRight(x, y *Tensor) *Tensor {
	return g.op("shift_right", "rightShiftWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Atan2 computes atan(x/y) using the signs of both to pick the quadrant.
func (g *Graph) Atan2(x, y *Tensor) *Tensor {
	return g.op("atan2", "atan2WithPrimaryTensor:secondaryTensor:name:", x, y)
}

// Complex builds a complex tensor from its real (x) and imaginary (y) parts.
func (g *Graph) Complex(x, y *Tensor) *Tensor {
	return g.op("complex", "complexTensorWithRealTensor:imaginaryTensor:name:", x, y)
}

// HammingDistance counts the differing bits between x and y along the last
// axis. x and y must be integer tensors; resultType is an integer type.
func (g *Graph) HammingDistance(x, y *Tensor, resultType DataType) *Tensor {
	if !resultType.IsInteger() {
		g.setErr(errors.Errorf("HammingDistance: result type %s is not an integer type", resultType))
		return nil
	}
	return g.op("hamming", "HammingDistanceWithPrimaryTensor:secondaryTensor:resultDataType:name:", x, y, resultType)
}

// Select picks onTrue where pred is true and onFalse elsewhere.
func (g *Graph) Select(pred, onTrue, onFalse *Tensor) *Tensor {
	return g.op("select", "selectWithPredicateTensor:truePredicateTensor:falsePredicateTensor:name:", pred, onTrue, onFalse)
}

// Clamp limits x to [lo, hi].
func (g *Graph) Clamp(x, lo, hi *Tensor) *Tensor {
	return g.op("clamp", "clampWithTensor:minValueTensor:maxValueTensor:name:", x, lo, hi)
}
