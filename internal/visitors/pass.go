package visitors

import "biogenesis/internal/common"

// PassThrough returns the pair unchanged.
type PassThrough struct{}

func (PassThrough) Visit(p common.AlignedPair) (keep bool, out common.AlignedPair, err error) {
	return true, p, nil
}
