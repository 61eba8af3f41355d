// Package detect classifies release asset filenames by target platform.
//
// Given an asset name such as "ripgrep-x86_64-unknown-linux-musl.tar.gz" it
// derives a canonical platform key ("linux-x86_64") or reports that the file
// is not a portable binary at all. Matching is case-insensitive substring
// search over the filename, not token-aware parsing; a product name that
// happens to contain an architecture keyword will be misread. That trade-off
// is deliberate: real release filenames are too inconsistently delimited for
// stricter parsing to be reliable.
//
// All classification state lives in static tables (tables.go); both entry
// points are pure functions and safe for concurrent use.
package detect

import "strings"

// Detect classifies an asset filename into a canonical platform key.
//
// The key has the form "{platform}-{architecture}", or bare "{platform}" when
// no architecture could be determined and the platform has no default
// (darwin). The second return value is false when the filename is not a
// recognizable portable binary: unknown extension, no platform keyword, or an
// explicitly unsupported architecture. That is a routine skip signal, not an
// error; most release listings contain checksums, source tarballs and
// installers that legitimately fail classification.
func Detect(filename string) (string, bool) {
	lower := strings.ToLower(filename)

	ext, ok := extractExtension(lower)
	if !ok {
		return "", false
	}
	stem := strings.TrimSuffix(lower, ext)

	platform, ok := extractPlatform(stem, ext)
	if !ok {
		return "", false
	}

	arch, ok := extractArch(stem, platform)
	if !ok {
		return "", false
	}
	if arch == "" {
		arch = archDefaults[platform]
	}

	if arch == "" {
		return platform, true
	}
	return platform + "-" + arch, true
}

// extractExtension matches the filename suffix against the portable-format
// allow-list. Expects a lower-cased name.
func extractExtension(lower string) (string, bool) {
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return ext, true
		}
	}
	return "", false
}

// extractPlatform scans the extension-stripped name for a platform keyword.
// A ".exe" suffix implies windows even without an explicit marker.
func extractPlatform(stem, ext string) (string, bool) {
	for _, m := range platformKeywords {
		if strings.Contains(stem, m.keyword) {
			return m.canonical, true
		}
	}
	if ext == ".exe" {
		return PlatformWindows, true
	}
	return "", false
}

// extractArch scans for an architecture keyword. It returns ok=false when the
// name carries an unsupported architecture, and an empty arch with ok=true
// when no keyword was found at all.
func extractArch(stem, platform string) (string, bool) {
	for _, skip := range skipArchPatterns {
		if strings.Contains(stem, skip) {
			return "", false
		}
	}

	for _, m := range archKeywords {
		if strings.Contains(stem, m.keyword) {
			return m.canonical, true
		}
	}

	// Bare "x86" is ambiguous: 32-bit Macs have been gone since 10.15, so on
	// darwin it means x86_64; everywhere else it means i686.
	if strings.Contains(stem, "x86") {
		if platform == PlatformDarwin {
			return ArchX8664, true
		}
		return ArchI686, true
	}

	return "", true
}
