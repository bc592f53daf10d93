// Package errors provides standardized error types for the provision CLI tool.
//
// Every provisioning stage classifies its failures with a StageError carrying
// an error code that maps onto one stage of the workflow (usage, privilege,
// platform, install, render, write, service, certificate, registry). The
// workflow runner stops at the first StageError; there is no aggregation and
// no retry.
//
// Creating stage errors:
//
//	return errors.Usage("missing required option: --domain")
//	return errors.Wrap(errors.ErrCodeService, "nginx reload failed", err)
//
// Checking:
//
//	var stageErr *errors.StageError
//	if errors.As(err, &stageErr) {
//	    fmt.Println(stageErr.Code)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes, one per failure class of the provisioning workflow.
const (
	ErrCodeUsage       ErrorCode = "USAGE"       // Bad or missing invocation arguments
	ErrCodePrivilege   ErrorCode = "PRIVILEGE"   // Not running as root
	ErrCodePlatform    ErrorCode = "PLATFORM"    // Unsupported or undetectable OS
	ErrCodeInstall     ErrorCode = "INSTALL"     // Package or capability install failed
	ErrCodeRender      ErrorCode = "RENDER"      // Template substitution failed
	ErrCodeWrite       ErrorCode = "WRITE"       // Config write or symlink failed
	ErrCodeService     ErrorCode = "SERVICE"     // Syntax check or service activation failed
	ErrCodeCertificate ErrorCode = "CERTIFICATE" // ACME client failed
	ErrCodeRegistry    ErrorCode = "REGISTRY"    // Credential or container launch failed
	ErrCodeInternal    ErrorCode = "INTERNAL"    // Internal/unexpected error
)

// StageError represents a classified provisioning failure.
type StageError struct {
	Code    ErrorCode // Failure class
	Message string    // Human-readable message
	Domain  string    // Domain being provisioned (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Domain != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Domain, e.Message, e.Err)
	}
	if e.Domain != "" {
		return fmt.Sprintf("%s: %s", e.Domain, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *StageError) Is(target error) bool {
	t, ok := target.(*StageError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common failure scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrRootRequired indicates the tool is not running as the superuser.
	ErrRootRequired = &StageError{Code: ErrCodePrivilege, Message: "root privileges required"}

	// ErrUnsupportedOS indicates the detected distribution is not supported.
	ErrUnsupportedOS = &StageError{Code: ErrCodePlatform, Message: "unsupported distribution"}

	// ErrOSUndetectable indicates the distribution could not be determined.
	ErrOSUndetectable = &StageError{Code: ErrCodePlatform, Message: "cannot determine distribution"}

	// ErrInvalidDomain indicates the domain name is not a valid hostname.
	ErrInvalidDomain = &StageError{Code: ErrCodeUsage, Message: "invalid domain"}

	// ErrDockerMissing indicates docker is still unavailable after install.
	ErrDockerMissing = &StageError{Code: ErrCodeInstall, Message: "docker not available after install"}
)

// Usage creates a usage error with a custom message.
func Usage(msg string) error {
	return &StageError{
		Code:    ErrCodeUsage,
		Message: msg,
	}
}

// MissingOption creates a usage error naming a required option.
func MissingOption(option string) error {
	return &StageError{
		Code:    ErrCodeUsage,
		Message: fmt.Sprintf("missing required option: %s", option),
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &StageError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapDomain creates an error with domain context and underlying error.
func WrapDomain(code ErrorCode, domain, msg string, err error) error {
	return &StageError{
		Code:    code,
		Message: msg,
		Domain:  domain,
		Err:     err,
	}
}

// CodeOf returns the error code of the first StageError in err's chain,
// or ErrCodeInternal if there is none.
func CodeOf(err error) ErrorCode {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Code
	}
	return ErrCodeInternal
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
