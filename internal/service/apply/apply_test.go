package apply

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/localize/internal/domain/locale"
)

// recorder collects apply invocations for assertions.
type recorder struct {
	commands [][]string
}

func (r *recorder) run(_ context.Context, name string, args ...string) string {
	r.commands = append(r.commands, append([]string{name}, args...))
	return ""
}

// TestKeyboardVariants checks the invocation sequence for ordinary and
// Apple keyboards.
func TestKeyboardVariants(t *testing.T) {
	t.Parallel()

	resolved := locale.Resolved{Country: "DE", Language: "de", Timezone: "Europe/Berlin"}

	rec := new(recorder)
	Keyboard(context.Background(), rec.run, resolved, false)

	require.Equal(t, [][]string{
		{"setxkbmap", "-layout", "de"},
		{"setxkbmap", "-variant", "nodeadkeys"},
		{"setxkbmap", "-query"},
	}, rec.commands)

	rec = new(recorder)
	Keyboard(context.Background(), rec.run, resolved, true)

	require.Equal(t, [][]string{
		{"setxkbmap", "-layout", "de"},
		{"setxkbmap", "-variant", "mac"},
		{"setxkbmap", "-model", "macintosh"},
		{"setxkbmap", "-query"},
	}, rec.commands)
}

// TestTimezoneInvocation checks the single timezone tool call.
func TestTimezoneInvocation(t *testing.T) {
	t.Parallel()

	rec := new(recorder)
	Timezone(context.Background(), rec.run, locale.Resolved{Timezone: "Europe/Berlin"})

	require.Len(t, rec.commands, 1)
	require.Contains(t, rec.commands[0], "Europe/Berlin")
}

// TestWriteEnvFile verifies the exact file content, directory creation
// and idempotence.
func TestWriteEnvFile(t *testing.T) {
	t.Parallel()

	resolved := locale.Resolved{Country: "DE", Language: "de", Timezone: "Europe/Berlin"}
	path := filepath.Join(t.TempDir(), "localize", "include")

	require.NoError(t, WriteEnvFile(path, resolved))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"LANG=\"de_DE.UTF-8\"\nMM_CHARSET=\"de_DE.UTF-8\"\nTZ=\"Europe/Berlin\"\n",
		string(contents))

	// Writing again with the same locale reproduces the file byte for byte.
	require.NoError(t, WriteEnvFile(path, resolved))

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, contents, again)
}
