package sitegen

import (
	"regexp"
	"strings"

	apperrors "github.com/yanqian/ai-sitegen/pkg/errors"
)

// TemplateID selects the colour palette of a generated site.
type TemplateID string

const (
	TemplateBusiness    TemplateID = "business"
	TemplatePortfolio   TemplateID = "portfolio"
	TemplateBlog        TemplateID = "blog"
	TemplateLanding     TemplateID = "landing"
	TemplateEcommerce   TemplateID = "ecommerce"
	TemplatePhotography TemplateID = "photography"
)

// Templates lists every known template in catalog order.
var Templates = []TemplateID{
	TemplateBusiness,
	TemplatePortfolio,
	TemplateBlog,
	TemplateLanding,
	TemplateEcommerce,
	TemplatePhotography,
}

// Known reports whether id names one of the built-in palettes.
func (id TemplateID) Known() bool {
	for _, candidate := range Templates {
		if candidate == id {
			return true
		}
	}
	return false
}

// BusinessType is the classification derived from a prompt. It selects hero copy and features.
type BusinessType string

const (
	BusinessRestaurant BusinessType = "restaurant"
	BusinessPortfolio  BusinessType = "portfolio"
	BusinessTech       BusinessType = "tech"
	BusinessBlog       BusinessType = "blog"
	BusinessDefault    BusinessType = "default"
)

// Theme is a four colour CSS palette.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

var cssColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

// Validate rejects values that are not plain CSS colours. Built-in palettes always pass;
// it guards data supplied back by clients before it reaches the stylesheet.
func (t Theme) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"primary", t.Primary},
		{"secondary", t.Secondary},
		{"accent", t.Accent},
		{"background", t.Background},
	}
	for _, f := range fields {
		if !cssColorPattern.MatchString(strings.TrimSpace(f.value)) {
			return apperrors.Invalid("theme." + f.name + " must be a css colour")
		}
	}
	return nil
}

// Hero is the banner copy at the top of the page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// Feature is one card of the features grid.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Sections groups the page body content.
type Sections struct {
	Hero     Hero      `json:"hero"`
	Features []Feature `json:"features"`
}

// WebsiteData is the complete description of a generated page. Values are built fresh for
// every request and never shared between calls.
type WebsiteData struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Template    TemplateID `json:"template"`
	Theme       Theme      `json:"theme"`
	Sections    Sections   `json:"sections"`
}

// Validate checks client supplied data before it is rendered.
func (w WebsiteData) Validate() error {
	if strings.TrimSpace(w.Title) == "" {
		return apperrors.Invalid("title cannot be empty")
	}
	if len(w.Sections.Features) == 0 {
		return apperrors.Invalid("at least one feature is required")
	}
	return w.Theme.Validate()
}

// Document is the rendered output: a full HTML page and its stylesheet.
type Document struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

// ExportFiles names the files a document is saved as.
type ExportFiles struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

// GenerateRequest is the payload accepted by Generate, Export and Publish.
type GenerateRequest struct {
	Prompt   string     `json:"prompt"`
	Template TemplateID `json:"template"`
}

// GenerateResponse carries the structured site and its rendered document.
type GenerateResponse struct {
	Website    WebsiteData  `json:"website"`
	Tag        BusinessType `json:"tag,omitempty"`
	HTML       string       `json:"html"`
	CSS        string       `json:"css"`
	Files      ExportFiles  `json:"files"`
	DurationMs int64        `json:"durationMs,omitempty"`
}

// ExportFormat selects which half of the document an export returns.
type ExportFormat string

const (
	ExportHTML ExportFormat = "html"
	ExportCSS  ExportFormat = "css"
)

// ExportRequest asks for a downloadable file.
type ExportRequest struct {
	Prompt   string       `json:"prompt"`
	Template TemplateID   `json:"template"`
	Format   ExportFormat `json:"format"`
}

// ExportFile is a single downloadable artifact.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// PublishResponse describes a shared site.
type PublishResponse struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Files     ExportFiles `json:"files"`
	Size      int64       `json:"size"`
	CreatedAt string      `json:"createdAt"`
}

// PublishedFile is a file read back from a published site.
type PublishedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// TemplateInfo is a catalog entry shown by template pickers.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Theme       Theme      `json:"theme"`
}

// Catalog lists the templates and a few example prompts.
type Catalog struct {
	Templates []TemplateInfo `json:"templates"`
	Examples  []string       `json:"examples"`
}
