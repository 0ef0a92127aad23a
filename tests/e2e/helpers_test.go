package e2e_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// binPath is the verbo binary shared by every test in this package, built
// once in TestMain.
var binPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "verbo-e2e-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "verbo")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	build := exec.Command("go", "build", "-o", binPath, "./cmd/verbo")
	build.Dir = projectRoot()
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "building verbo: %v\n%s", err, out)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// projectRoot returns the absolute path to the root of the repository. It
// uses runtime.Caller(0) to find this source file's location and navigates
// two directories up (tests/e2e/ -> tests/ -> repo root).
func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// testRun executes the built binary in an isolated working directory so a
// stray verbo.toml near the checkout cannot leak into profile discovery.
type testRun struct {
	Dir string
	Env []string
	t   *testing.T
}

func newTestRun(t *testing.T) *testRun {
	t.Helper()
	return &testRun{Dir: t.TempDir(), t: t}
}

// result is one invocation's outcome. Stdout and stderr are captured
// separately because routing between them is the behavior under test.
type result struct {
	Stdout string
	Stderr string
	Code   int
}

// run executes verbo with the given stdin and arguments. Every environment
// variable the logger consults is cleared first, so tests opt in through
// tr.Env; exec.Cmd keeps the last value for duplicate keys, which makes the
// appended empty entries act as unset.
func (tr *testRun) run(stdin string, args ...string) result {
	tr.t.Helper()

	cmd := exec.Command(binPath, args...)
	cmd.Dir = tr.Dir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(),
		"VERBO_LOG=",
		"NO_COLOR=",
		"CLICOLOR=",
		"CLICOLOR_FORCE=",
		"TERM=dumb",
	)
	cmd.Env = append(cmd.Env, tr.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		require.True(tr.t, errors.As(err, &exitErr), "running verbo %v: %v", args, err)
		res.Code = exitErr.ExitCode()
	}
	return res
}

// runExpectSuccess runs verbo and asserts exit code 0.
func (tr *testRun) runExpectSuccess(stdin string, args ...string) result {
	tr.t.Helper()
	res := tr.run(stdin, args...)
	require.Zero(tr.t, res.Code, "verbo %v failed:\nstdout: %s\nstderr: %s", args, res.Stdout, res.Stderr)
	return res
}

// runExpectFailure runs verbo and asserts a non-zero exit code.
func (tr *testRun) runExpectFailure(stdin string, args ...string) result {
	tr.t.Helper()
	res := tr.run(stdin, args...)
	require.NotZero(tr.t, res.Code, "verbo %v expected to fail:\nstdout: %s\nstderr: %s", args, res.Stdout, res.Stderr)
	return res
}

// writeProfile writes content to verbo.toml in tr.Dir, where the binary's
// upward search finds it.
func (tr *testRun) writeProfile(content string) {
	tr.t.Helper()
	err := os.WriteFile(filepath.Join(tr.Dir, "verbo.toml"), []byte(content), 0o644)
	require.NoError(tr.t, err)
}
