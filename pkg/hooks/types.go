// Package hooks lets bucket maintainers curate generated manifests with
// small Tengo scripts, e.g. to exclude a package or rewrite its description
// without editing the source lists.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	// PackageFilter runs once per assembled package before it is added to
	// the manifest.
	PackageFilter HookType = "package-filter"
	// ScriptFilter runs once per assembled script entry.
	ScriptFilter HookType = "script-filter"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// Context is the information exposed to a filter script.
type Context struct {
	// Name of the package or script entry.
	Name string
	// Description as assembled from upstream metadata.
	Description string
	// Repo is the upstream repository URL.
	Repo string
	// ScriptType is set for script entries ("bash", "powershell", ...).
	ScriptType string
	// Platforms is the number of classified platform assets (packages only).
	Platforms int
	// Vars carries custom variables through to the script.
	Vars map[string]interface{}
}

// Result is what a filter script decided. The zero value accepts the entry
// unchanged.
type Result struct {
	// Skip excludes the entry from the manifest.
	Skip bool
	// Description, when non-empty, replaces the assembled description.
	Description string
}

// Manager defines the interface for running curation hooks.
type Manager interface {
	// Execute runs the hook of the given type. A missing hook accepts the
	// entry unchanged.
	Execute(hookType HookType, ctx Context) (Result, error)

	// AddScript registers or replaces a hook script.
	AddScript(hookType HookType, script string)

	// HasScript checks if a hook of the specified type exists.
	HasScript(hookType HookType) bool
}
