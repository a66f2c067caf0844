package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	lastArgs []string
}

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, name)
	s.lastArgs = args
	return nil
}

func (s *stubExec) isLoggedIn() bool                     { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error   { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error      { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error     { return s.record("logout") }
func (s *stubExec) Papers(ctx context.Context) error     { return s.record("papers") }
func (s *stubExec) RequestOTP(ctx context.Context) error { return s.record("otp") }
func (s *stubExec) Upload(ctx context.Context) error     { return s.record("upload") }
func (s *stubExec) Users(ctx context.Context) error      { return s.record("users") }
func (s *stubExec) AssignRole(ctx context.Context) error { return s.record("assign-role") }
func (s *stubExec) Logs(ctx context.Context) error       { return s.record("logs") }

func (s *stubExec) View(ctx context.Context, args []string) error {
	return s.record("view", args...)
}
func (s *stubExec) Download(ctx context.Context, args []string) error {
	return s.record("download", args...)
}
func (s *stubExec) BulkUsers(ctx context.Context, args []string) error {
	return s.record("bulk-users", args...)
}
func (s *stubExec) Academic(ctx context.Context, args []string) error {
	return s.record("academic", args...)
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	defer func() { printlnFn = orig }()
	printlnFn = func(args ...any) {
		lines = append(lines, fmt.Sprintln(args...))
	}

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return lines
}

func TestREPL_Dispatch(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "papers\nview 2\ndownload 1\notp\nlogout\nexit\n")

	require.Equal(t, []string{"papers", "view", "download", "otp", "logout"}, exec.calls)
}

func TestREPL_ArgsArePassedThrough(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "bulk-users students.csv\nexit\n")

	require.Equal(t, []string{"bulk-users"}, exec.calls)
	require.Equal(t, []string{"students.csv"}, exec.lastArgs)
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	lines := runScript(t, exec, "frobnicate\nexit\n")

	require.Empty(t, exec.calls)
	joined := strings.Join(lines, "")
	require.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := runScript(t, &stubExec{}, "help\nexit\n")
	joined := strings.Join(lines, "")
	require.Contains(t, joined, "login")
	require.NotContains(t, joined, "papers")

	lines = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(lines, "")
	require.Contains(t, joined, "papers")
	require.Contains(t, joined, "bulk-users")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "") // no commands, scanner hits EOF immediately
	require.Empty(t, exec.calls)
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "\n\npapers\n\nquit\n")
	require.Equal(t, []string{"papers"}, exec.calls)
}
