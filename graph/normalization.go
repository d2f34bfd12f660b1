package graph

// Normalization computes gamma * (x - mean) / sqrt(variance + epsilon) + beta.
// gamma and beta are optional. Batch, layer and instance normalization
// differ only in the axes mean and variance are computed over.
func (g *Graph) Normalization(x, mean, variance, gamma, beta *Tensor, epsilon float64) *Tensor {
	return g.op("normalization", "normalizationWithTensor:meanTensor:varianceTensor:gammaTensor:betaTensor:epsilon:name:",
		x, mean, variance, opt(gamma), opt(beta), epsilon)
}

// NormalizeAxes normalizes x with its own mean and variance over axes.
func (g *Graph) NormalizeAxes(x, gamma, beta *Tensor, epsilon float64, axes ...int) *Tensor {
	mean := g.Mean(x, axes...)
	variance := g.VarianceWithMean(x, mean, axes...)
	return g.Normalization(x, mean, variance, gamma, beta, epsilon)
}

// NormalizationGammaGradient is the gradient of Normalization with respect
// to gamma, summed over axes.
func (g *Graph) NormalizationGammaGradient(gradient, source, mean, variance *Tensor, axes []int, epsilon float64) *Tensor {
	return g.op("normalization_gamma_grad", "normalizationGammaGradientWithIncomingGradientTensor:sourceTensor:meanTensor:varianceTensor:reductionAxes:epsilon:name:",
		gradient, source, mean, variance, axes, epsilon)
}

// NormalizationBetaGradient is the gradient of Normalization with respect
// to beta: gradient summed over axes.
func (g *Graph) NormalizationBetaGradient(gradient, source *Tensor, axes []int) *Tensor {
	return g.op("normalization_beta_grad", "normalizationBetaGradientWithIncomingGradientTensor:sourceTensor:reductionAxes:name:",
		gradient, source, axes)
}

// NormalizationGradient is the gradient with respect to the normalized
// source. gamma, gammaGradient and betaGradient are optional.
func (g *Graph) NormalizationGradient(gradient, source, mean, variance, gamma, gammaGradient, betaGradient *Tensor, axes []int, epsilon float64) *Tensor {
	return g.op("normalization_grad", "normalizationGradientWithIncomingGradientTensor:sourceTensor:meanTensor:varianceTensor:gammaTensor:gammaGradientTensor:betaGradientTensor:reductionAxes:epsilon:name:",
		gradient, source, mean, variance, opt(gamma), opt(gammaGradient), opt(betaGradient), axes, epsilon)
}
