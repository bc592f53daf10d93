// Package template renders the nginx site configuration for a domain.
//
// Substitution is deliberately restricted: only the $domain / ${domain}
// tokens are replaced, and the value is passed in explicitly rather than
// exported through the environment. Nginx templates are full of their own
// $-prefixed runtime variables ($host, $uri, $remote_addr) which must reach
// the rendered file verbatim, so no general-purpose template engine is used.
//
// A default site template ships embedded in the binary; an operator can
// override it by placing a file at the configured template path (by default
// templates/nginx-site.conf relative to the working directory).
package template
