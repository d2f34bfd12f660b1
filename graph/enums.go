package graph

// TensorNamedDataLayout mirrors MPSGraphTensorNamedDataLayout.
type TensorNamedDataLayout uint64

const (
	LayoutNCHW TensorNamedDataLayout = iota
	LayoutNHWC
	LayoutOIHW
	LayoutHWIO
	LayoutCHW
	LayoutHWC
	LayoutHW
	LayoutNCDHW
	LayoutNDHWC
	LayoutOIDHW
	LayoutDHWIO
)

func (l TensorNamedDataLayout) enumValue() uint64 { return uint64(l) }

// PaddingStyle mirrors MPSGraphPaddingStyle.
type PaddingStyle uint64

const (
	PaddingExplicit PaddingStyle = iota
	PaddingValid
	PaddingSame
	PaddingExplicitOffset
	PaddingOnnxSameLower
)

func (p PaddingStyle) enumValue() uint64 { return uint64(p) }

// PaddingMode mirrors MPSGraphPaddingMode.
type PaddingMode int64

const (
	PaddingModeConstant PaddingMode = iota
	PaddingModeReflect
	PaddingModeSymmetric
	PaddingModeClampToEdge
	PaddingModeZero
	PaddingModePeriodic
	PaddingModeAntiPeriodic
)

func (p PaddingMode) enumValue() uint64 { return uint64(p) }

// ReductionMode mirrors MPSGraphReductionMode, used by stencils.
type ReductionMode uint64

const (
	ReductionMin ReductionMode = iota
	ReductionMax
	ReductionSum
	ReductionProduct
	ReductionArgMin
	ReductionArgMax
)

func (r ReductionMode) enumValue() uint64 { return uint64(r) }

// ResizeMode mirrors MPSGraphResizeMode.
type ResizeMode uint64

const (
	ResizeNearest ResizeMode = iota
	ResizeBilinear
)

func (r ResizeMode) enumValue() uint64 { return uint64(r) }

// NearestRoundingMode mirrors MPSGraphResizeNearestRoundingMode.
type NearestRoundingMode uint64

const (
	RoundPreferCeil NearestRoundingMode = iota
	RoundPreferFloor
	RoundCeil
	RoundFloor
	RoundToEven
	RoundToOdd
)

func (r NearestRoundingMode) enumValue() uint64 { return uint64(r) }

// ScatterMode mirrors MPSGraphScatterMode.
type ScatterMode int64

const (
	ScatterAdd ScatterMode = iota
	ScatterSub
	ScatterMul
	ScatterDiv
	ScatterMin
	ScatterMax
	ScatterSet
)

func (s ScatterMode) enumValue() uint64 { return uint64(s) }

// LossReduction mirrors MPSGraphLossReductionType.
type LossReduction uint64

const (
	LossReductionNone LossReduction = iota
	LossReductionSum
	LossReductionMean
)

func (l LossReduction) enumValue() uint64 { return uint64(l) }

// RandomDistribution mirrors MPSGraphRandomDistribution.
type RandomDistribution uint64

const (
	DistributionUniform RandomDistribution = iota
	DistributionNormal
	DistributionTruncatedNormal
)

func (r RandomDistribution) enumValue() uint64 { return uint64(r) }

// NormalSampling mirrors MPSGraphRandomNormalSamplingMethod.
type NormalSampling uint64

const (
	SamplingInvCDF NormalSampling = iota
	SamplingBoxMuller
)

func (n NormalSampling) enumValue() uint64 { return uint64(n) }

// FFTScaling mirrors MPSGraphFFTScalingMode.
type FFTScaling uint64

const (
	FFTScalingNone FFTScaling = iota
	FFTScalingSize
	FFTScalingUnitary
)

func (f FFTScaling) enumValue() uint64 { return uint64(f) }

// SparseStorage mirrors MPSGraphSparseStorageType.
type SparseStorage uint64

const (
	SparseCOO SparseStorage = iota
	SparseCSC
	SparseCSR
)

func (s SparseStorage) enumValue() uint64 { return uint64(s) }

// BoxCoordinateMode mirrors MPSGraphNonMaximumSuppressionCoordinateMode.
type BoxCoordinateMode uint64

const (
	CornersHeightFirst BoxCoordinateMode = iota
	CornersWidthFirst
	CentersHeightFirst
	CentersWidthFirst
)

func (b BoxCoordinateMode) enumValue() uint64 { return uint64(b) }

// PoolingReturnIndices mirrors MPSGraphPoolingReturnIndicesMode.
type PoolingReturnIndices uint64

const (
	ReturnIndicesNone PoolingReturnIndices = iota
	ReturnIndicesGlobalFlatten1D
	ReturnIndicesGlobalFlatten2D
	ReturnIndicesGlobalFlatten3D
	ReturnIndicesGlobalFlatten4D
	ReturnIndicesLocalFlatten1D
	ReturnIndicesLocalFlatten2D
	ReturnIndicesLocalFlatten3D
	ReturnIndicesLocalFlatten4D
)

func (p PoolingReturnIndices) enumValue() uint64 { return uint64(p) }

// RNNActivation mirrors MPSGraphRNNActivation.
type RNNActivation uint64

const (
	RNNActivationNone RNNActivation = iota
	RNNActivationRelu
	RNNActivationTanh
	RNNActivationSigmoid
	RNNActivationHardSigmoid
)

func (r RNNActivation) enumValue() uint64 { return uint64(r) }

// Optimization mirrors MPSGraphOptimization.
type Optimization uint64

const (
	OptimizationLevel0 Optimization = iota
	OptimizationLevel1
)

func (o Optimization) enumValue() uint64 { return uint64(o) }

// OptimizationProfile mirrors MPSGraphOptimizationProfile.
type OptimizationProfile uint64

const (
	ProfilePerformance OptimizationProfile = iota
	ProfilePowerEfficiency
)

func (o OptimizationProfile) enumValue() uint64 { return uint64(o) }

// DeploymentPlatform mirrors MPSGraphDeploymentPlatform.
type DeploymentPlatform uint64

const (
	PlatformMacOS DeploymentPlatform = iota
	PlatformIOS
	PlatformTvOS
	PlatformVisionOS
)

func (d DeploymentPlatform) enumValue() uint64 { return uint64(d) }

// ExecutionStage mirrors MPSGraphExecutionStage.
type ExecutionStage uint64

// StageCompleted is the only execution stage MPSGraph defines.
const StageCompleted ExecutionStage = 0

func (e ExecutionStage) enumValue() uint64 { return uint64(e) }
