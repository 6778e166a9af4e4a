package tag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// mopTokens is how many leading filename tokens form the payment-method tag.
// Statement files are named <Bank>_<AccountType>_<HolderName>_<...>.
const mopTokens = 3

// MalformedFilenameError means a statement filename has too few
// underscore-separated tokens to derive a tag from.
type MalformedFilenameError struct {
	Name string
}

func (e MalformedFilenameError) Error() string {
	return fmt.Sprintf("filename %q: need at least %d underscore-separated tokens", e.Name, mopTokens)
}

// MOP derives the mode-of-payment tag from a statement file path.
// "HDFC_DC_JohnDoe_240919.xlsx" -> "HDFC_DC_JohnDoe"
func MOP(path string) (string, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(base, "_")
	if len(parts) < mopTokens {
		return "", MalformedFilenameError{Name: filepath.Base(path)}
	}
	return strings.Join(parts[:mopTokens], "_"), nil
}
