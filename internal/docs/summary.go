package docs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"
)

// SummaryExtractor reduces a structured description to one line of plain text.
type SummaryExtractor func(description string) string

// SummaryProvider is the capability of producing an index summary.
type SummaryProvider interface {
	Summary(extract SummaryExtractor) string
}

// Described is a document variant that carries a description.
type Described struct {
	Description string
}

// Summary runs extract over the description; nil means ExtractSummary.
func (d Described) Summary(extract SummaryExtractor) string {
	if extract == nil {
		extract = ExtractSummary
	}
	return extract(d.Description)
}

// Undescribed is every document variant without a description.
type Undescribed struct{}

// Summary is always empty.
func (Undescribed) Summary(SummaryExtractor) string { return "" }

// ExtractSummary returns the first sentence of the first paragraph of a
// description, with inline markup removed and whitespace collapsed.
func ExtractSummary(description string) string {
	src := []byte(dedent(description))
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var para ast.Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindParagraph || n.Kind() == ast.KindTextBlock {
			para = n
			break
		}
	}
	if para == nil {
		return ""
	}

	var sb strings.Builder
	_ = ast.Walk(para, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(src))
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	plain := strings.Join(strings.Fields(sb.String()), " ")
	return norm.NFC.String(firstSentence(plain))
}

// dedent strips leading indentation so comment bodies are not read as code blocks.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, " \t")
	}
	return strings.Join(lines, "\n")
}

func firstSentence(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
			if i+1 == len(s) || s[i+1] == ' ' {
				return s[:i+1]
			}
		}
	}
	return s
}
