package visitors

import "biogenesis/internal/common"

// Threshold drops pairs below a minimum identity or score.
// MinIdentity is a percentage; 0 disables it. The score floor only
// applies when ScoreFloor is set, since global scores may be negative.
type Threshold struct {
	MinIdentity float64
	MinScore    int
	ScoreFloor  bool
}

func (v Threshold) Visit(p common.AlignedPair) (bool, common.AlignedPair, error) {
	if v.MinIdentity > 0 && p.Result.Identity < v.MinIdentity {
		return false, p, nil
	}
	if v.ScoreFloor && p.Result.Score < v.MinScore {
		return false, p, nil
	}
	return true, p, nil
}

// Active reports whether any floor is set.
func (v Threshold) Active() bool { return v.MinIdentity > 0 || v.ScoreFloor }
