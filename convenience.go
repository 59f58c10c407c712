package coesine

import (
	"fmt"

	"github.com/tphakala/go-coe-sine/internal/coe"
)

// WriteFile generates the table and writes it as a COE file at path,
// creating or truncating it. The parent directory must exist.
func WriteFile(path string) error {
	if err := coe.WriteFile(path, Table()); err != nil {
		return fmt.Errorf("coesine: %w", err)
	}
	return nil
}
