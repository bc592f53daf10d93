package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestStageErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *StageError
		want string
	}{
		{
			"message only",
			&StageError{Code: ErrCodeUsage, Message: "missing required option: --email"},
			"missing required option: --email",
		},
		{
			"message with domain",
			&StageError{Code: ErrCodeWrite, Message: "config write failed", Domain: "example.com"},
			"example.com: config write failed",
		},
		{
			"message with wrapped error",
			&StageError{Code: ErrCodeService, Message: "nginx reload failed", Err: stderrors.New("exit status 1")},
			"nginx reload failed: exit status 1",
		},
		{
			"domain and wrapped error",
			&StageError{Code: ErrCodeCertificate, Message: "certbot failed", Domain: "example.com", Err: stderrors.New("exit status 1")},
			"example.com: certbot failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(ErrCodePrivilege, "running as uid 1000", nil)
	if !Is(err, ErrRootRequired) {
		t.Error("expected privilege error to match ErrRootRequired")
	}
	if Is(err, ErrUnsupportedOS) {
		t.Error("privilege error should not match platform sentinel")
	}
}

func TestMissingOption(t *testing.T) {
	err := MissingOption("--user")
	if !strings.Contains(err.Error(), "--user") {
		t.Errorf("error should name the option, got %q", err.Error())
	}
	if CodeOf(err) != ErrCodeUsage {
		t.Errorf("expected USAGE code, got %s", CodeOf(err))
	}
}

func TestCodeOf(t *testing.T) {
	t.Run("stage error", func(t *testing.T) {
		err := WrapDomain(ErrCodeRegistry, "example.com", "launch failed", stderrors.New("boom"))
		if CodeOf(err) != ErrCodeRegistry {
			t.Errorf("expected REGISTRY, got %s", CodeOf(err))
		}
	})

	t.Run("plain error", func(t *testing.T) {
		if CodeOf(stderrors.New("boom")) != ErrCodeInternal {
			t.Error("plain errors should classify as INTERNAL")
		}
	})
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("exit status 2")
	err := Wrap(ErrCodeInstall, "apt-get update failed", inner)

	var stageErr *StageError
	if !As(err, &stageErr) {
		t.Fatal("expected StageError in chain")
	}
	if !stderrors.Is(err, inner) {
		t.Error("expected wrapped error to be reachable via errors.Is")
	}
}
