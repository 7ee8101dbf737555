package pipeline

// Pipeline stage capacities
const (
	defaultStageCapacity = 3 // smooth, normalize, remap
)
