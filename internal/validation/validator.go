// Package validation checks export paths before any file is touched.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmatos/tabula/internal/domain"
)

const invalidFilenameChars = `<>:"\|?*`

// ValidatePath verifies an extensionless export path: non-empty, a
// filename free of reserved characters, and an existing parent
// directory. Runs before any write so a failed export creates nothing.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path cannot be empty", domain.ErrInvalidValue)
	}

	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("%w: directory %q does not exist", domain.ErrMissingResource, dir)
		}
	}

	if base := filepath.Base(path); strings.ContainsAny(base, invalidFilenameChars) {
		return fmt.Errorf("%w: filename %q contains invalid characters", domain.ErrInvalidValue, base)
	}
	return nil
}
