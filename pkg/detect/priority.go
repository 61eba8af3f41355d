package detect

import "strings"

// Priority ranks an asset among others that classified to the same platform
// key. Higher is better. The caller keeps the asset with the strictly
// greatest priority per key and keeps the first-seen asset on ties, so the
// final selection does not depend on listing order beyond tie-breaks.
//
// Ranking looks only at compiler/toolchain markers in the filename: on linux
// static musl builds beat gnu builds beat unmarked ones; on windows msvc
// beats gnu beats musl. Other platforms have no recognized variants and
// always rank 1.
func Priority(filename, platformKey string) int {
	platform := platformKey
	if i := strings.Index(platformKey, "-"); i >= 0 {
		platform = platformKey[:i]
	}

	priorities, ok := compilerPriority[platform]
	if !ok {
		return 1
	}

	lower := strings.ToLower(filename)
	best := 1
	for _, compiler := range compilerKeywords {
		if !strings.Contains(lower, compiler) {
			continue
		}
		if p, ok := priorities[compiler]; ok && p > best {
			best = p
		}
	}
	return best
}
