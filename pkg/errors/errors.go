package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")

	// Source list errors.
	ErrSourcesRead = fmt.Errorf("failed to read sources file")
	ErrInvalidURL  = fmt.Errorf("unrecognized source URL")
	ErrInvalidGist = fmt.Errorf("invalid gist URL")
	ErrNoSources   = fmt.Errorf("no sources to process")

	// Manifest errors.
	ErrManifestParse    = fmt.Errorf("failed to parse manifest")
	ErrManifestValidate = fmt.Errorf("manifest failed schema validation")
	ErrManifestWrite    = fmt.Errorf("failed to write manifest")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
