// Package tier maps progression levels to tier numbers using a
// character-owned list of ascending thresholds.
package tier

// ForLevel returns the tier a level falls in. Tier 1 covers levels below
// the first threshold; each threshold met or passed bumps the tier by one.
// An empty threshold list means everything is tier 1. Thresholds are
// assumed sorted, deduplicated, and positive; the owning character
// validates them on mutation.
func ForLevel(level int, thresholds []int) int {
	t := 1
	for _, threshold := range thresholds {
		if level >= threshold {
			t++
		}
	}
	return t
}

// Range returns the inclusive level span of a tier. open reports an
// open-ended upper bound (the final tier), in which case high is
// meaningless. Tiers outside 1..len(thresholds)+1 return (0, 0, false).
func Range(t int, thresholds []int) (low, high int, open bool) {
	if t < 1 || t > len(thresholds)+1 {
		return 0, 0, false
	}
	low = 1
	if t > 1 {
		low = thresholds[t-2]
	}
	if t == len(thresholds)+1 {
		return low, 0, true
	}
	return low, thresholds[t-1] - 1, false
}

// NextThreshold returns the smallest threshold strictly greater than
// level. ok is false when the level is past every threshold.
func NextThreshold(level int, thresholds []int) (int, bool) {
	for _, threshold := range thresholds {
		if threshold > level {
			return threshold, true
		}
	}
	return 0, false
}
