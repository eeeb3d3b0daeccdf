package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/renato0307/gittree/internal/domain"
)

// validRefNameChars allows alphanumerics, '.', '_', '-' and '/'
var validRefNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// validateRefName checks a branch or tag name before it is passed to git.
// It is stricter than git-check-ref-format: shell metacharacters are refused too.
func validateRefName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s %w", kind, domain.ErrEmptyName)
	}

	for _, prefix := range []string{".", "/", "-"} {
		if strings.HasPrefix(name, prefix) {
			return fmt.Errorf("%s name cannot start with '%s'", kind, prefix)
		}
	}
	for _, suffix := range []string{".lock", ".", "/"} {
		if strings.HasSuffix(name, suffix) {
			return fmt.Errorf("%s name cannot end with '%s'", kind, suffix)
		}
	}
	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return fmt.Errorf("%s name cannot contain '%s'", kind, seq)
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s name cannot contain control characters", kind)
		}
	}

	if !validRefNameChars.MatchString(name) {
		return fmt.Errorf("%s name contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)", kind)
	}

	return nil
}
