// Package config provides the settings model for the provision CLI tool.
//
// Settings cover the filesystem contract with the host: nginx site
// directories, the certbot live directory, the site template path, and the
// registry container parameters (image, name, published port, data and auth
// directories).
//
// Settings are loaded from /etc/provision/config.yaml when present:
//
//	nginx_available: /etc/nginx/sites-available
//	nginx_enabled: /etc/nginx/sites-enabled
//	registry_image: registry:2
//	registry_port: 5000
//
// Missing files are not an error; every field has a default matching a stock
// Debian or Ubuntu install. Only fields present in the file are overridden.
package config
