package config_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/teamdocs/internal/platform/config"
)

const exitfHelperEnv = "TEAMDOCS_EXITF_HELPER"

func TestExitfHelper(t *testing.T) {
	if os.Getenv(exitfHelperEnv) != "1" {
		t.Skip("runs only as the Exitf subprocess")
	}
	config.Exitf("parse flags: %v", errors.New("flag provided but not defined: -db"))
}

func TestExitfWritesStderrAndExitsOne(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfHelper$")
	cmd.Env = append(os.Environ(), exitfHelperEnv+"=1")
	var stderr, stdout strings.Builder
	cmd.Stderr = &stderr
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %T %v, want *exec.ExitError", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	want := "parse flags: flag provided but not defined: -db\n"
	if got := stderr.String(); got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
}
