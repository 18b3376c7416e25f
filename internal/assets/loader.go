package assets

// AssetLoader loads the stylesheets and the page template used for
// standalone HTML output. The embedded set ships the "dark", "default" and
// "plain" styles and the "page" template; a filesystem loader can add or
// override them.
type AssetLoader interface {
	// LoadStyle returns the CSS of a style such as "default", named without
	// the .css extension. It returns ErrStyleNotFound for unknown styles and
	// ErrInvalidAssetName for names that fail ValidateAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the source of an html/template such as "page",
	// named without the .html extension. It returns ErrTemplateNotFound for
	// unknown templates and ErrInvalidAssetName for names that fail
	// ValidateAssetName.
	LoadTemplate(name string) (string, error)
}
