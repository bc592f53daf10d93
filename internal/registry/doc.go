// Package registry stands up an authenticated container registry behind the
// TLS certificate certbot issued for the host's domain.
//
// Credential creation is idempotent: an existing htpasswd file is never
// overwritten or appended to. The running instance is not: every launch
// stops and removes any previous container under the fixed name and starts
// a fresh one, which is safe because registry data lives on a mounted
// volume.
//
// Launch assumes certificate issuance already succeeded; it mounts the
// certbot live directory for the domain directly, so the container fails to
// serve if the certificate files are absent or the domain does not match.
package registry
