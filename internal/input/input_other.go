//go:build !windows

package input

type nullSampler struct{}

func newSampler() Sampler {
	return nullSampler{}
}

// Sample reports no keys held; global key polling is Windows-only.
func (nullSampler) Sample() State {
	return State{}
}
