package hooks

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/wenget/bucketgen/pkg/errors"
)

// TengoExecutor handles the execution of Tengo filter scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

// Execute runs the specified hook type with the given context. The script
// sees the entry's metadata as plain variables and may set `skip = true` or
// assign a replacement `description`. Setting `err` fails the generation.
func (e *TengoExecutor) Execute(hookType HookType, ctx Context) (Result, error) {
	e.mutex.RLock()
	script, exists := e.scripts[hookType]
	e.mutex.RUnlock()

	if !exists {
		return Result{}, nil // No script for this hook type
	}

	instance := tengo.NewScript([]byte(script))
	instance.SetImports(stdlib.GetModuleMap("fmt", "text", "times"))

	vars := map[string]interface{}{
		"name":        ctx.Name,
		"description": ctx.Description,
		"repo":        ctx.Repo,
		"scriptType":  ctx.ScriptType,
		"platforms":   ctx.Platforms,
		"skip":        false,
	}
	for k, v := range ctx.Vars {
		vars[k] = v
	}
	for k, v := range vars {
		if err := instance.Add(k, v); err != nil {
			return Result{}, fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := instance.Run()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w: %w", hookType, errors.ErrHookExecution, err)
	}

	// Check for any returned error
	if errVar := compiled.Get("err"); errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return Result{}, fmt.Errorf("%w: %w", errors.ErrHookScript, v)
		case string:
			if v != "" {
				return Result{}, fmt.Errorf("%w: %s", errors.ErrHookScript, v)
			}
		}
	}

	result := Result{}
	if skip, ok := compiled.Get("skip").Value().(bool); ok {
		result.Skip = skip
	}
	if desc, ok := compiled.Get("description").Value().(string); ok && desc != ctx.Description {
		result.Description = desc
	}
	return result, nil
}

// AddScript adds or updates a script for the specified hook type.
func (e *TengoExecutor) AddScript(hookType HookType, script string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
}

// HasScript checks if a script exists for the specified hook type.
func (e *TengoExecutor) HasScript(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
