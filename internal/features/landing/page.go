package landing

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("landing.html").ParseFS(templateFS, "templates/landing.html"))

// LandingPage renders the full marketing page.
func LandingPage(c Content) templ.Component {
	return templ.FromGoHTML(pageTemplate, c)
}
