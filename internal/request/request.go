// Package request defines the validated provisioning request constructed from
// invocation arguments. Validation happens before any side effect; a request
// that fails validation never reaches the workflow.
package request

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
)

// hostnameRE matches a DNS hostname: dot-separated labels of letters, digits
// and inner hyphens.
var hostnameRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// ProvisionRequest holds the validated inputs for one provisioning run.
// It is constructed once from CLI flags and immutable thereafter.
type ProvisionRequest struct {
	Domain       string
	Email        string
	RegistryUser string
	RegistryPass string
}

// New validates inputs for the web workflow and returns a request.
func New(domain, email string) (*ProvisionRequest, error) {
	req := &ProvisionRequest{Domain: domain, Email: email}
	if err := req.validateBase(); err != nil {
		return nil, err
	}
	return req, nil
}

// NewWithRegistry validates inputs for the registry workflow.
// Registry credentials are required in addition to domain and email.
func NewWithRegistry(domain, email, user, password string) (*ProvisionRequest, error) {
	req := &ProvisionRequest{
		Domain:       domain,
		Email:        email,
		RegistryUser: user,
		RegistryPass: password,
	}
	if req.RegistryUser == "" {
		return nil, errors.MissingOption("--user")
	}
	if req.RegistryPass == "" {
		return nil, errors.MissingOption("--password")
	}
	if err := req.validateBase(); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *ProvisionRequest) validateBase() error {
	if r.Domain == "" {
		return errors.MissingOption("--domain")
	}
	if err := ValidateDomain(r.Domain); err != nil {
		return err
	}
	if r.Email == "" {
		return errors.MissingOption("--email")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.Usage(fmt.Sprintf("invalid email address: %s", r.Email))
	}
	return nil
}

// ValidateDomain checks that domain is a plausible DNS hostname.
func ValidateDomain(domain string) error {
	if domain == "" {
		return errors.Usage("domain cannot be empty")
	}
	if len(domain) > 253 {
		return errors.Usage("domain exceeds 253 characters")
	}
	if !hostnameRE.MatchString(domain) {
		return errors.Usage(fmt.Sprintf("invalid domain: %s", domain))
	}
	return nil
}
