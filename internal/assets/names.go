package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// PageTemplateName is the name of the standalone page template.
const PageTemplateName = "page"
