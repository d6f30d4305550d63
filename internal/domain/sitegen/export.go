package sitegen

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	stylesheetFilename = "styles.css"
	htmlContentType    = "text/html; charset=utf-8"
	cssContentType     = "text/css; charset=utf-8"
)

// Matches the Unicode whitespace set, not only ASCII.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Slug lowercases the title and turns every run of whitespace into a single dash.
// Other characters are kept as they are. Casers are stateful, so one is built per call.
func Slug(title string) string {
	return whitespaceRun.ReplaceAllString(cases.Lower(language.Und).String(title), "-")
}

// ExportFilenames returns the download names for a site's HTML and CSS files.
func ExportFilenames(title string) ExportFiles {
	name := Slug(title)
	if name == "" {
		name = Slug(FallbackTitle)
	}
	return ExportFiles{HTML: name + ".html", CSS: stylesheetFilename}
}

func exportFile(doc Document, files ExportFiles, format ExportFormat) (ExportFile, bool) {
	switch format {
	case ExportHTML:
		return ExportFile{Filename: files.HTML, ContentType: htmlContentType, Content: []byte(doc.HTML)}, true
	case ExportCSS:
		return ExportFile{Filename: files.CSS, ContentType: cssContentType, Content: []byte(doc.CSS)}, true
	default:
		return ExportFile{}, false
	}
}
