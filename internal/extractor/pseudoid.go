package extractor

import "strconv"

// PseudoID derives a deterministic short ID from a problem name for
// platforms that have no native numbering. Re-running over the same name
// always yields the same ID. The hash folds into 32 bits on purpose so IDs
// stay stable across architectures.
//
// Extractors never call this themselves: numbers stay absent unless a
// consuming backend opts in to pseudo IDs.
func PseudoID(platform Platform, name string) string {
	var hash int32
	for _, c := range name {
		hash = hash*31 + int32(c)
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	if len(digits) > 6 {
		digits = digits[:6]
	}
	return pseudoIDPrefix(platform) + digits
}

func pseudoIDPrefix(platform Platform) string {
	switch platform {
	case PlatformGFG:
		return "GFG-"
	case PlatformInterviewBit:
		return "IB-"
	default:
		return ""
	}
}
