package detect

// Canonical platform names emitted in platform keys.
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformDarwin  = "darwin"
	PlatformFreeBSD = "freebsd"
)

// Canonical architecture names emitted in platform keys.
const (
	ArchX8664   = "x86_64"
	ArchI686    = "i686"
	ArchAarch64 = "aarch64"
	ArchARMv7   = "armv7"
	ArchARMv6   = "armv6"
)

type keywordMapping struct {
	keyword   string
	canonical string
}

// extensions lists the portable archive/executable suffixes accepted by the
// classifier. Installer formats (.msi, .deb, .rpm, ...) are deliberately
// absent. Multi-segment suffixes come first so ".tar.gz" is never matched as
// a bare ".gz".
var extensions = []string{
	".tar.bz2",
	".tar.gz",
	".tar.xz",
	".tbz2",
	".tgz",
	".txz",
	".exe",
	".rar",
	".zip",
	".7z",
}

// platformKeywords maps raw filename substrings to canonical platform names.
// Ordered longest-first so a specific keyword is never shadowed by a shorter
// one it contains.
var platformKeywords = []keywordMapping{
	{"apple-darwin", PlatformDarwin},
	{"unknown-linux", PlatformLinux},
	{"pc-windows", PlatformWindows},
	{"freebsd", PlatformFreeBSD},
	{"windows", PlatformWindows},
	{"darwin", PlatformDarwin},
	{"macos", PlatformDarwin},
	{"apple", PlatformDarwin},
	{"linux", PlatformLinux},
	{"osx", PlatformDarwin},
	{"mac", PlatformDarwin},
	{"win", PlatformWindows},
}

// archKeywords maps raw filename substrings to canonical architectures,
// ordered longest-first ("x86_64" before "x64", "armv7" before "arm").
// The ambiguous bare "x86" keyword is handled separately in extractArch.
var archKeywords = []keywordMapping{
	{"aarch64", ArchAarch64},
	{"x86_64", ArchX8664},
	{"x86-64", ArchX8664},
	{"armv7l", ArchARMv7},
	{"amd64", ArchX8664},
	{"win64", ArchX8664},
	{"win32", ArchI686},
	{"arm64", ArchAarch64},
	{"armv7", ArchARMv7},
	{"armhf", ArchARMv7},
	{"armv6", ArchARMv6},
	{"i686", ArchI686},
	{"i386", ArchI686},
	{"x64", ArchX8664},
	{"arm", ArchARMv6},
}

// skipArchPatterns are architectures wenget does not ship binaries for. Any
// match rejects the whole filename, even when the rest would classify.
var skipArchPatterns = []string{
	"s390x",
	"ppc64le",
	"ppc64",
	"riscv64",
	"mipsel",
	"mips",
}

// compilerKeywords are toolchain markers recognized for priority ranking.
// They never become part of a platform key. Ordered longest-first so
// "musleabihf" is not reported as "musl".
var compilerKeywords = []string{
	"musleabihf",
	"gnueabihf",
	"musleabi",
	"musl",
	"msvc",
	"gnu",
}

// archDefaults is applied when no architecture keyword is present. Darwin has
// no default: historical Mac releases span both architectures and guessing
// would silently mis-tag assets.
var archDefaults = map[string]string{
	PlatformWindows: ArchX8664,
	PlatformLinux:   ArchX8664,
	PlatformFreeBSD: ArchX8664,
	PlatformDarwin:  "",
}

// compilerPriority ranks toolchain variants per platform. Higher wins. Linux
// prefers static musl builds; Windows prefers msvc. Platforms without an
// entry always rank 1.
var compilerPriority = map[string]map[string]int{
	PlatformLinux: {
		"musl":       3,
		"musleabihf": 3,
		"musleabi":   3,
		"gnu":        2,
		"gnueabihf":  2,
	},
	PlatformWindows: {
		"msvc": 3,
		"gnu":  2,
		"musl": 1,
	},
}
