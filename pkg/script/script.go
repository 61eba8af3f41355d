// Package script detects the interpreter type of bucket scripts from their
// filename or, failing that, from a shebang line.
package script

import "strings"

// extensionTypes maps script file extensions to manifest script types.
// Ordered so StripExtension removes the matched suffix deterministically.
var extensionTypes = []struct {
	ext        string
	scriptType string
}{
	{".ps1", "powershell"},
	{".sh", "bash"},
	{".bat", "batch"},
	{".cmd", "batch"},
	{".py", "python"},
}

// TypeFromFilename detects a script type from the filename extension.
func TypeFromFilename(filename string) (string, bool) {
	lower := strings.ToLower(filename)
	for _, m := range extensionTypes {
		if strings.HasSuffix(lower, m.ext) {
			return m.scriptType, true
		}
	}
	return "", false
}

// TypeFromShebang detects a script type from the first line of its content.
// Used for raw script URLs without a recognizable extension.
func TypeFromShebang(content string) (string, bool) {
	if content == "" {
		return "", false
	}

	firstLine := strings.TrimSpace(strings.SplitN(content, "\n", 2)[0])
	if !strings.HasPrefix(firstLine, "#!") {
		return "", false
	}

	shebang := strings.ToLower(firstLine)
	switch {
	case strings.Contains(shebang, "bash"), strings.Contains(shebang, "sh"):
		return "bash", true
	case strings.Contains(shebang, "python"):
		return "python", true
	case strings.Contains(shebang, "pwsh"), strings.Contains(shebang, "powershell"):
		return "powershell", true
	}
	return "", false
}

// StripExtension removes a recognized script extension from a filename,
// yielding the script's manifest name. Unrecognized names pass through.
func StripExtension(filename string) string {
	lower := strings.ToLower(filename)
	for _, m := range extensionTypes {
		if strings.HasSuffix(lower, m.ext) {
			return filename[:len(filename)-len(m.ext)]
		}
	}
	return filename
}
