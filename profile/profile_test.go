package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbolabs/verbo"
)

// writeProfile writes TOML content to a temp verbo.toml and returns its path.
func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

// --- Load tests ---

func TestLoad_FullProfile(t *testing.T) {
	t.Parallel()
	path := writeProfile(t, `
[logging]
level = "debug"
verbosity = 2
filter = "server/http=trace"
separator = " | "
colors = false
show_level = true
show_line_numbers = true
show_module_path = false

[logging.levels.error]
color = "#ff5f5f"

[logging.levels.trace]
stream = "stderr"
`)

	p, warnings, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, warnings, "expected no warnings for a fully known profile")

	lg := p.Logging
	assert.Equal(t, "debug", lg.Level)
	require.NotNil(t, lg.Verbosity)
	assert.Equal(t, 2, *lg.Verbosity)
	assert.Equal(t, "server/http=trace", lg.Filter)
	require.NotNil(t, lg.Separator)
	assert.Equal(t, " | ", *lg.Separator)
	require.NotNil(t, lg.Colors)
	assert.False(t, *lg.Colors)
	require.NotNil(t, lg.ShowLevel)
	assert.True(t, *lg.ShowLevel)
	require.NotNil(t, lg.ShowLineNumbers)
	assert.True(t, *lg.ShowLineNumbers)
	require.NotNil(t, lg.ShowModulePath)
	assert.False(t, *lg.ShowModulePath)

	require.Len(t, lg.Levels, 2)
	assert.Equal(t, "#ff5f5f", lg.Levels["error"].Color)
	assert.Equal(t, "stderr", lg.Levels["trace"].Stream)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()
	p, warnings, err := Load(writeProfile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Everything unset: Apply would leave a builder untouched.
	assert.Empty(t, p.Logging.Level)
	assert.Nil(t, p.Logging.Verbosity)
	assert.Nil(t, p.Logging.Separator)
	assert.Nil(t, p.Logging.Levels)
}

func TestLoad_UnknownKeysWarn(t *testing.T) {
	t.Parallel()
	p, warnings, err := Load(writeProfile(t, `
[logging]
level = "info"
shout = true

[display]
width = 80
`))
	require.NoError(t, err)
	assert.Equal(t, "info", p.Logging.Level)

	require.NotEmpty(t, warnings, "expected warnings for unknown keys")
	assert.Contains(t, warnings, `unknown profile key "logging.shout"`)
	assert.Contains(t, warnings, `unknown profile key "display.width"`)
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()
	_, _, err := Load(writeProfile(t, "[logging\nlevel = \"info\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading profile")
}

func TestLoad_NonExistentFile(t *testing.T) {
	t.Parallel()
	_, _, err := Load("/nonexistent/path/verbo.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading profile")
}

// --- Validate tests ---

func TestValidate_EmptyProfile(t *testing.T) {
	t.Parallel()
	assert.NoError(t, (&Profile{}).Validate())
}

func TestValidate_FullProfile(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{
		Level:     "warn",
		Verbosity: intPtr(0),
		Separator: strPtr(" - "),
		Colors:    boolPtr(false),
		ShowLevel: boolPtr(true),
		Levels: map[string]LevelOverride{
			"error": {Color: "9", Stream: "stderr"},
		},
	}}
	assert.NoError(t, p.Validate())
}

func TestValidate_UnknownLevelName(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{Level: "loud"}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "must be one of: error warn info debug trace")
}

func TestValidate_NegativeVerbosity(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{Verbosity: intPtr(-1)}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.verbosity")
	assert.Contains(t, err.Error(), "must be >= 0")
}

func TestValidate_UnknownStreamName(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{
		Levels: map[string]LevelOverride{"debug": {Stream: "tty"}},
	}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: stdout stderr")
}

func TestValidate_UnknownLevelsKey(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{
		Levels: map[string]LevelOverride{"fatal": {Color: "1"}},
	}}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown severity "fatal"`)
}

// --- Find tests ---

func TestFind_InCurrentDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o644))

	found, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_InParentDir(t *testing.T) {
	t.Parallel()
	parent := t.TempDir()
	child := filepath.Join(parent, "sub", "deep")
	require.NoError(t, os.MkdirAll(child, 0o755))

	path := filepath.Join(parent, FileName)
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o644))

	found, err := Find(child)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_NotFound(t *testing.T) {
	t.Parallel()
	found, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found, "expected empty string when no profile exists")
}

// --- Apply tests ---

func TestApply_RejectsUnknownLevelsKey(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{
		Levels: map[string]LevelOverride{"fatal": {Color: "1"}},
	}}

	err := p.Apply(verbo.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.levels.fatal")
}

func TestApply_RejectsUnknownStream(t *testing.T) {
	t.Parallel()
	p := &Profile{Logging: Logging{
		Levels: map[string]LevelOverride{"debug": {Stream: "tty"}},
	}}

	err := p.Apply(verbo.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.levels.debug.stream")
}

// TestApply_EndToEnd loads a profile from disk, applies it to a builder, and
// verifies the installed sink behaves as the profile says. It is the only
// test in this package that installs the process sink.
func TestApply_EndToEnd(t *testing.T) {
	t.Setenv(verbo.EnvFilter, "")
	path := writeProfile(t, `
[logging]
level = "debug"
separator = " | "
show_level = true
show_module_path = false

[logging.levels.debug]
stream = "stderr"
`)

	p, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.NoError(t, p.Validate())

	var stdout, stderr bytes.Buffer
	b := verbo.New().Writers(&stdout, &stderr)
	require.NoError(t, p.Apply(b))
	require.NoError(t, b.Init())

	verbo.Info("ready")
	verbo.Debug("probing cache")
	verbo.Trace("hidden")

	assert.Equal(t, "INFO | ready\n", stdout.String(), "info stays on stdout")
	assert.Equal(t, "DEBUG | probing cache\n", stderr.String(), "debug rerouted to stderr per profile")
}
