package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Template is a parsed template file: frontmatter metadata plus body source.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the "Subject" frontmatter key, if any.
func (t *Template) Subject() string {
	s, _ := t.Metadata["Subject"].(string)
	return s
}

// ParseTemplate splits content into YAML frontmatter and body. Content
// without a leading delimiter is all body.
func ParseTemplate(content []byte) (*Template, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(text, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: text}, nil
	}

	rest := strings.TrimLeft(strings.TrimPrefix(text, frontmatterDelimiter), "\n")

	var head, body string
	if strings.HasPrefix(rest, frontmatterDelimiter) {
		body = rest[len(frontmatterDelimiter):]
	} else {
		end := strings.Index(rest, "\n"+frontmatterDelimiter)
		if end == -1 {
			return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
		}
		head, body = rest[:end], rest[end+1+len(frontmatterDelimiter):]
	}
	body = strings.TrimPrefix(body, "\n")

	meta := map[string]any{}
	if strings.TrimSpace(head) != "" {
		if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: meta, Body: body}, nil
}

// Rendered is the output of Renderer.Render.
type Rendered struct {
	Subject string
	Text    string
}

// Renderer renders text templates from a file system.
type Renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// Render executes the named template and its frontmatter subject with data.
func (r *Renderer) Render(name string, data any) (*Rendered, error) {
	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	tmpl, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	text, err := execute(name, tmpl.Body, data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject, err := execute(name+":subject", tmpl.Subject(), data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Rendered{Subject: strings.TrimSpace(subject), Text: text}, nil
}

func execute(name, src string, data any) (string, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
