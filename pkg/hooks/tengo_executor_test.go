package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenget/bucketgen/pkg/hooks"
)

func TestTengoExecutor(t *testing.T) {
	ctx := hooks.Context{
		Name:        "ripgrep",
		Description: "line-oriented search tool",
		Repo:        "https://github.com/BurntSushi/ripgrep",
		Platforms:   3,
	}

	t.Run("missing hook accepts entry unchanged", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		result, err := executor.Execute(hooks.PackageFilter, ctx)
		require.NoError(t, err)
		assert.False(t, result.Skip)
		assert.Empty(t, result.Description)
	})

	t.Run("script can skip an entry", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		executor.AddScript(hooks.PackageFilter, `
			text := import("text")
			if text.has_prefix(name, "rip") {
				skip = true
			}
		`)

		result, err := executor.Execute(hooks.PackageFilter, ctx)
		require.NoError(t, err)
		assert.True(t, result.Skip)
	})

	t.Run("script can rewrite the description", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		executor.AddScript(hooks.PackageFilter, `description = name + " (curated)"`)

		result, err := executor.Execute(hooks.PackageFilter, ctx)
		require.NoError(t, err)
		assert.False(t, result.Skip)
		assert.Equal(t, "ripgrep (curated)", result.Description)
	})

	t.Run("unchanged description is not reported", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		executor.AddScript(hooks.PackageFilter, `// nothing to do`)

		result, err := executor.Execute(hooks.PackageFilter, ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Description)
	})

	t.Run("script error fails execution", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		executor.AddScript(hooks.ScriptFilter, `err := "script entries not allowed"`)

		_, err := executor.Execute(hooks.ScriptFilter, hooks.Context{Name: "x", ScriptType: "bash"})
		assert.Error(t, err)
	})

	t.Run("runtime error fails execution", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		executor.AddScript(hooks.PackageFilter, `non_existent_function()`)

		_, err := executor.Execute(hooks.PackageFilter, ctx)
		assert.Error(t, err)
	})

	t.Run("HasScript check", func(t *testing.T) {
		executor := hooks.NewTengoExecutor()
		assert.False(t, executor.HasScript(hooks.PackageFilter))

		executor.AddScript(hooks.PackageFilter, `// test script`)
		assert.True(t, executor.HasScript(hooks.PackageFilter))
	})
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "package-filter.tengo"),
		[]byte(`skip = platforms == 0`), 0o644))

	executor := hooks.NewTengoExecutor()
	require.NoError(t, hooks.LoadFromDir(executor, dir))

	assert.True(t, executor.HasScript(hooks.PackageFilter))
	assert.False(t, executor.HasScript(hooks.ScriptFilter))

	result, err := executor.Execute(hooks.PackageFilter, hooks.Context{Name: "x", Platforms: 0})
	require.NoError(t, err)
	assert.True(t, result.Skip)
}
