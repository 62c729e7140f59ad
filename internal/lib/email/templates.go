package email

import "embed"

//go:embed templates/*.html
var templates embed.FS

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWelcome corresponds to templates/welcome.html
	TemplateWelcome Template = "welcome"

	// TemplateOrderConfirmation corresponds to templates/order_confirmation.html
	TemplateOrderConfirmation Template = "order_confirmation"
)
