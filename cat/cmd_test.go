package cat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	coreutils "github.com/lineutils/go-coreutils"
)

func runCat(t *testing.T, stdin string, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	ctx, s := testContext(t, stdin, env)
	err := run(ctx, args...)
	return s.stdout.String(), s.stderr.String(), err
}

func TestShowAllEquivalence(t *testing.T) {
	all, _, err := runCat(t, "", nil, "-A", "sample.txt")
	require.NoError(t, err)

	for _, args := range [][]string{
		{"-vET"},
		{"-v", "-E", "-T"},
		{"--show-nonprinting", "--show-ends", "--show-tabs"},
		{"-et"},
	} {
		out, _, err := runCat(t, "", nil, append(args, "sample.txt")...)
		require.NoError(t, err)
		require.Equal(t, all, out, "%v", args)
	}
}

func TestShortAliases(t *testing.T) {
	const in = "a\tb\x01\n"

	// -v escapes TAB on its own, so -e shows it as ^I as well.
	out, _, err := runCat(t, in, nil, "-e")
	require.NoError(t, err)
	require.Equal(t, "a^Ib^A$\n", out)

	out, _, err = runCat(t, in, nil, "-t")
	require.NoError(t, err)
	require.Equal(t, "a^Ib^A\n", out)
}

func TestUnbufferedIgnored(t *testing.T) {
	plain, _, err := runCat(t, "x\n\ny\n", nil)
	require.NoError(t, err)
	out, _, err := runCat(t, "x\n\ny\n", nil, "-u")
	require.NoError(t, err)
	require.Equal(t, plain, out)
	require.Equal(t, "x\n\ny\n", out)
}

func TestStdinOperand(t *testing.T) {
	out, _, err := runCat(t, "in\n", nil, "crlf.txt", "-")
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n\nthree\nin\n", out)
}

func TestNumberConflictFlags(t *testing.T) {
	out, errOut, err := runCat(t, "x\n", nil, "-n", "-b")
	require.ErrorIs(t, err, ErrNumberConflict)
	require.Empty(t, out)
	require.True(t, strings.HasPrefix(errOut, "cat: options --number and --number-nonblank"), errOut)
	require.Contains(t, errOut, "Try 'cat --help'")
}

func TestHelpAndVersion(t *testing.T) {
	out, _, err := runCat(t, "", nil, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Usage: cat [OPTION]... [FILE]...")
	require.Contains(t, out, "--show-nonprinting")

	out, _, err = runCat(t, "", nil, "--version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Go cat (Go coreutils)"))
}

func TestUnknownFlag(t *testing.T) {
	_, errOut, err := runCat(t, "", nil, "--bogus")
	require.Error(t, err)
	require.Contains(t, errOut, "cat: unknown flag: --bogus")
}

func TestMissingFileExitsNonZero(t *testing.T) {
	out, errOut, err := runCat(t, "", nil, "nope", "crlf.txt")
	require.ErrorIs(t, err, ErrPartial)
	require.Equal(t, "one\ntwo\n\nthree\n", out)
	require.Equal(t, "nope: no such file or directory\n", errOut)
}

func TestDefaultsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.toml")
	require.NoError(t, os.WriteFile(path, []byte("number = true\nshow-ends = true\n"), 0o644))

	out, _, err := runCat(t, "a\n", nil, "--defaults", path)
	require.NoError(t, err)
	require.Equal(t, "     1\ta$\n", out)

	out, _, err = runCat(t, "a\n", map[string]string{defaultsEnv: path})
	require.NoError(t, err)
	require.Equal(t, "     1\ta$\n", out)

	// Flags add to the defaults; they can still conflict.
	_, _, err = runCat(t, "a\n", nil, "--defaults", path, "-b")
	require.ErrorIs(t, err, ErrNumberConflict)
}

func TestDefaultsFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.toml")
	require.NoError(t, os.WriteFile(path, []byte("numbr = true\n"), 0o644))

	_, errOut, err := runCat(t, "a\n", nil, "--defaults", path)
	require.Error(t, err)
	require.Contains(t, errOut, `unknown option "numbr"`)
}

func TestRegistered(t *testing.T) {
	require.Contains(t, coreutils.Names(), "cat")

	ctx, s := testContext(t, "via registry\n", nil)
	require.NoError(t, coreutils.Run(ctx, "cat", "-n"))
	require.Equal(t, "     1\tvia registry\n", s.stdout.String())
}
