package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/ksyq12/provision/internal/errors"
)

// Render substitutes the domain into the template content. Substitution is
// restricted to the domain token; every other $-prefixed token in the
// template (nginx runtime variables like $host, $remote_addr) passes through
// untouched.
func Render(content, domain string) string {
	replacer := strings.NewReplacer(
		"${domain}", domain,
		"$domain", domain,
	)
	return replacer.Replace(content)
}

// RenderSite loads the site template and renders it for the domain.
// The file at path takes precedence when it exists; otherwise the embedded
// default template is used.
func RenderSite(path, domain string) (string, error) {
	content, err := loadTemplate(path)
	if err != nil {
		return "", err
	}
	return Render(content, domain), nil
}

// loadTemplate reads the template file at path, falling back to the embedded
// default when the file does not exist. Any other read failure is fatal.
func loadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultSiteTemplate()
		}
		return "", errors.Wrap(errors.ErrCodeRender,
			fmt.Sprintf("failed to read template %s", path), err)
	}
	return string(data), nil
}
