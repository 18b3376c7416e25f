package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks a style or template name before it is joined to
// an asset directory. Names come from --style, LLMMD_STYLE and the page.style
// config key, so anything that could select a path or another extension is
// rejected: empty names and names holding "/", "\" or ".".
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q (use a bare name like %q)", ErrInvalidAssetName, name, DefaultStyleName)
	}
	return nil
}
