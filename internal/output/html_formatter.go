package output

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter renders the markdown report to a standalone HTML page
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
blockquote { color: #555; border-left: 4px solid #ccc; margin-left: 0; padding-left: 1em; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	source, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := markdown.Convert(source, &body); err != nil {
		return nil, err
	}

	title := "Relatório de Planejamento Tributário"
	if report.Company.Name != "" {
		title += " - " + report.Company.Name
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
