package sitegen

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// copyrightYear is fixed so identical data always renders byte-identical documents.
const copyrightYear = 2024

const stylesheetSource = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  line-height: 1.6;
  color: #333;
  background: {{.Background}};
}

.container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 20px;
}

.header {
  background: {{.Primary}};
  color: white;
  padding: 1rem 0;
  position: sticky;
  top: 0;
  z-index: 100;
}

.nav {
  display: flex;
  justify-content: space-between;
  align-items: center;
}

.logo {
  font-size: 1.5rem;
  font-weight: bold;
}

.nav-links {
  display: flex;
  gap: 2rem;
  list-style: none;
}

.nav-links a {
  color: white;
  text-decoration: none;
  transition: opacity 0.3s;
}

.nav-links a:hover {
  opacity: 0.8;
}

.hero {
  background: linear-gradient(135deg, {{.Primary}}, {{.Secondary}});
  color: white;
  padding: 4rem 0;
  text-align: center;
}

.hero h1 {
  font-size: 3rem;
  margin-bottom: 1rem;
}

.hero p {
  font-size: 1.2rem;
  margin-bottom: 2rem;
}

.btn {
  background: {{.Accent}};
  color: white;
  padding: 12px 24px;
  border: none;
  border-radius: 8px;
  cursor: pointer;
  font-size: 1rem;
  text-decoration: none;
  display: inline-block;
  transition: opacity 0.3s;
}

.btn:hover {
  opacity: 0.9;
}

.section {
  padding: 4rem 0;
}

.section h2 {
  font-size: 2.5rem;
  margin-bottom: 2rem;
  text-align: center;
}

.features {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
  gap: 2rem;
}

.feature {
  background: white;
  padding: 2rem;
  border-radius: 12px;
  box-shadow: 0 4px 6px rgba(0,0,0,0.1);
  text-align: center;
  transition: transform 0.3s;
}

.feature:hover {
  transform: translateY(-5px);
}

.feature h3 {
  color: {{.Primary}};
  margin-bottom: 1rem;
}

.footer {
  background: #333;
  color: white;
  padding: 2rem 0;
  text-align: center;
}

@media (max-width: 768px) {
  .hero h1 {
    font-size: 2rem;
  }

  .nav-links {
    display: none;
  }
}
`

const documentSource = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Site.Title}}</title>
  <style>
{{.CSS}}
  </style>
</head>
<body>
  <header class="header">
    <nav class="nav container">
      <div class="logo">{{.Site.Title}}</div>
      <ul class="nav-links">
        <li><a href="#home">Home</a></li>
        <li><a href="#about">About</a></li>
        <li><a href="#services">Services</a></li>
        <li><a href="#contact">Contact</a></li>
      </ul>
    </nav>
  </header>

  <section class="hero" id="home">
    <div class="container">
      <h1>{{.Site.Sections.Hero.Title}}</h1>
      <p>{{.Site.Sections.Hero.Subtitle}}</p>
      <a href="#" class="btn">{{.Site.Sections.Hero.CTA}}</a>
    </div>
  </section>

  <section class="section" id="services">
    <div class="container">
      <h2>Features</h2>
      <div class="features">
{{- range .Site.Sections.Features}}
        <div class="feature">
          <h3>{{.Title}}</h3>
          <p>{{.Description}}</p>
        </div>
{{- end}}
      </div>
    </div>
  </section>

  <footer class="footer" id="contact">
    <div class="container">
      <p>&copy; {{.Year}} {{.Site.Title}}. All rights reserved.</p>
    </div>
  </footer>
</body>
</html>
`

var (
	stylesheetTemplate = texttemplate.Must(texttemplate.New("styles.css").Parse(stylesheetSource))
	documentTemplate   = htmltemplate.Must(htmltemplate.New("index.html").Parse(documentSource))
)

type documentView struct {
	Site WebsiteData
	CSS  htmltemplate.CSS
	Year int
}

// BuildCSS renders the stylesheet for a theme. It is the only CSS routine: the standalone
// export and the inline <style> block both come from it.
func BuildCSS(theme Theme) string {
	var b strings.Builder
	mustExecute(stylesheetTemplate.Execute(&b, theme))
	return b.String()
}

// Render serializes the page. Text fields are HTML-escaped; the CSS is embedded verbatim,
// so the inline copy is character-identical to Document.CSS.
func Render(data WebsiteData) Document {
	css := BuildCSS(data.Theme)
	var b strings.Builder
	mustExecute(documentTemplate.Execute(&b, documentView{
		Site: data,
		CSS:  htmltemplate.CSS(css),
		Year: copyrightYear,
	}))
	return Document{HTML: b.String(), CSS: css}
}

// The templates are static and the view types fixed, and strings.Builder never fails,
// so an execution error can only be a programming mistake.
func mustExecute(err error) {
	if err != nil {
		panic("sitegen: render template: " + err.Error())
	}
}
