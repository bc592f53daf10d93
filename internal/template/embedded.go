package template

import (
	"embed"

	"github.com/ksyq12/provision/internal/errors"
)

//go:embed nginx-site.conf
var embedded embed.FS

// defaultSiteTemplate returns the built-in nginx site template.
func defaultSiteTemplate() (string, error) {
	data, err := embedded.ReadFile("nginx-site.conf")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, "embedded template missing", err)
	}
	return string(data), nil
}
