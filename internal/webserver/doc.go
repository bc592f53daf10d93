// Package webserver manages the nginx collaborator: installing site
// configurations, enabling them, validating syntax and controlling the
// service through systemctl.
//
// Two invariants are enforced here. Site configs are installed atomically
// (temp file plus rename in the same directory) so nginx can never read a
// half-written file, and EnsureActive is only meaningful after Test has
// passed, so the service is never started or reloaded onto a configuration
// that fails the syntax check.
package webserver
