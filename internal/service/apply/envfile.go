package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/localize/internal/domain/locale"
)

const (
	// envFileTemplate is the exact content of the hand-off file sourced
	// by session-startup scripts. Nothing in this tool reads it back.
	envFileTemplate = "LANG=\"%[1]s\"\nMM_CHARSET=\"%[1]s\"\nTZ=\"%[2]s\"\n"

	// envFilePermissions keeps the file world-readable: it is sourced by
	// unprivileged session-startup scripts.
	envFilePermissions = 0o644

	// envDirPermissions is used when creating missing parent directories.
	envDirPermissions = 0o755
)

// RenderEnvFile returns the environment export block for the resolved
// locale.
func RenderEnvFile(resolved locale.Resolved) string {
	return fmt.Sprintf(envFileTemplate, resolved.Locale(), resolved.Timezone)
}

// WriteEnvFile renders the environment exports and overwrites the target
// file, creating parent directories as needed. Writing the same resolved
// locale twice produces byte-identical content.
func WriteEnvFile(path string, resolved locale.Resolved) error {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), envDirPermissions); err != nil {
		return fmt.Errorf("create environment file directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(RenderEnvFile(resolved)), envFilePermissions); err != nil {
		return fmt.Errorf("write environment file: %w", err)
	}

	return nil
}
