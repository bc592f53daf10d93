package pkgmgr

import (
	"errors"
	"strings"
	"testing"

	"github.com/ksyq12/provision/internal/executor"
)

func TestEnsurePackages(t *testing.T) {
	t.Run("runs update then upgrade then install", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		apt := NewWithExecutor(mock)

		if err := apt.EnsurePackages(WebPackages); err != nil {
			t.Fatalf("EnsurePackages failed: %v", err)
		}

		if len(mock.Calls) != 3 {
			t.Fatalf("expected 3 apt-get invocations, got %d", len(mock.Calls))
		}

		wantSubcommands := []string{"update", "upgrade", "install"}
		for i, want := range wantSubcommands {
			call := mock.Calls[i]
			if call.Name != "env" {
				t.Errorf("call %d: expected env wrapper, got %s", i, call.Name)
			}
			joined := strings.Join(call.Args, " ")
			if !strings.Contains(joined, "DEBIAN_FRONTEND=noninteractive") {
				t.Errorf("call %d missing noninteractive frontend: %v", i, call.Args)
			}
			if !strings.Contains(joined, "apt-get -qq "+want) {
				t.Errorf("call %d: expected apt-get %s, got %v", i, want, call.Args)
			}
		}

		installCall := strings.Join(mock.Calls[2].Args, " ")
		for _, pkg := range WebPackages {
			if !strings.Contains(installCall, pkg) {
				t.Errorf("install call missing package %s: %v", pkg, mock.Calls[2].Args)
			}
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		mock := &executor.MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				return []byte("E: Could not get lock"), errors.New("exit status 100")
			},
		}
		apt := NewWithExecutor(mock)

		if err := apt.EnsurePackages(WebPackages); err == nil {
			t.Fatal("expected error when apt-get update fails")
		}
		if len(mock.Calls) != 1 {
			t.Errorf("expected no further apt-get calls after failure, got %d", len(mock.Calls))
		}
	})
}

func TestEnsureDocker(t *testing.T) {
	t.Run("already installed", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		apt := NewWithExecutor(mock)

		if err := apt.EnsureDocker(); err != nil {
			t.Fatalf("EnsureDocker failed: %v", err)
		}
		if len(mock.Calls) != 0 {
			t.Errorf("expected no install when docker is present, got %d calls", len(mock.Calls))
		}
	})

	t.Run("installs when missing", func(t *testing.T) {
		missing := true
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				if missing {
					return "", errors.New("not found")
				}
				return "/usr/bin/docker", nil
			},
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				missing = false // install makes the binary appear
				return []byte(""), nil
			},
		}
		apt := NewWithExecutor(mock)

		if err := apt.EnsureDocker(); err != nil {
			t.Fatalf("EnsureDocker failed: %v", err)
		}
		if len(mock.Calls) != 1 || mock.Calls[0].Name != "sh" {
			t.Errorf("expected one shell install invocation, got %+v", mock.Calls)
		}
	})

	t.Run("install succeeds but binary still missing", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", errors.New("not found")
			},
		}
		apt := NewWithExecutor(mock)

		if err := apt.EnsureDocker(); err == nil {
			t.Error("expected error when docker is unresolvable after install")
		}
	})
}
