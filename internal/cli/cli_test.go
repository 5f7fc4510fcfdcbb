package cli

import (
	stdzip "archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designarena/internal/domain"
)

const briefYAML = `niche: tech talks
theme: neon
colors: ["0ea5e9", "#7c3aed"]
goal: growth
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func generateArgs(brief, dir string, extra ...string) []string {
	args := []string{"generate", "--brief", brief, "--out", dir, "--seed", "7", "--motion-idea", "0", "--no-motion=false", "--locale", "en"}
	return append(args, extra...)
}

func TestGenerateWritesArchive(t *testing.T) {
	dir := t.TempDir()
	briefFile := filepath.Join(t.TempDir(), "brief.yaml")
	require.NoError(t, os.WriteFile(briefFile, []byte(briefYAML), 0o644))

	out, err := run(t, "", generateArgs(briefFile, dir)...)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".zip"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := stdzip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var motion, visuals int
	for _, f := range zr.File {
		switch {
		case strings.Contains(f.Name, "/motion/"):
			motion++
		case strings.Contains(f.Name, "/visuals/"):
			visuals++
		}
	}
	assert.Equal(t, 1, motion)
	assert.Equal(t, 6, visuals)
}

func TestGenerateIsReproducible(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	a, err := run(t, briefYAML, generateArgs("-", first)...)
	require.NoError(t, err)
	b, err := run(t, briefYAML, generateArgs("-", second)...)
	require.NoError(t, err)

	da, err := os.ReadFile(strings.TrimSpace(a))
	require.NoError(t, err)
	db, err := os.ReadFile(strings.TrimSpace(b))
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerateRejectsInvalidBrief(t *testing.T) {
	_, err := run(t, "niche: x\ntheme: neon\ncolors: [blue]\ngoal: growth\n", generateArgs("-", t.TempDir())...)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "niche: min")
	assert.Contains(t, err.Error(), "colors[0]: hexlike")
}

func TestGenerateMotionIdeaOutOfRange(t *testing.T) {
	_, err := run(t, briefYAML, generateArgs("-", t.TempDir(), "--motion-idea", "9")...)
	assert.ErrorIs(t, err, domain.ErrIdeaOutOfRange)
}

func TestReadBriefUnknownField(t *testing.T) {
	_, err := readBrief(strings.NewReader("niche: a\nbudget: 3\n"), "-")
	assert.Error(t, err)

	_, err = readBrief(strings.NewReader(""), "-")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    1.2.3")
	assert.Contains(t, out, "Commit:     abc")
}
