// Package ssl obtains TLS certificates through the Certbot CLI.
//
// All cryptographic and ACME protocol work is delegated to certbot; this
// package only builds the non-interactive invocation and knows where certbot
// leaves its output:
//
//	/etc/letsencrypt/live/{domain}/fullchain.pem  (certificate chain)
//	/etc/letsencrypt/live/{domain}/privkey.pem    (private key)
//
// The issued certificate is never parsed or validated here; downstream
// consumers (the registry launcher) trust the well-known paths. The package
// uses a global executor that can be replaced for testing via SetExecutor.
package ssl
