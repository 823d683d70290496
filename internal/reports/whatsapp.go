package reports

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// FlattenForWhatsApp rewrites markdown into the formatting WhatsApp renders:
// *bold* headings and strong text, _italic_ emphasis, bullet and numbered
// lists, and links as "text (url)".
func FlattenForWhatsApp(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))

	var b strings.Builder
	var counters []int

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Heading:
			if entering {
				b.WriteString("*")
			} else {
				b.WriteString("*\n\n")
			}
		case *ast.Strong:
			b.WriteString("*")
		case *ast.Emph:
			b.WriteString("_")
		case *ast.Del:
			b.WriteString("~")
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				fmt.Fprintf(&b, "`%s`", n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				fmt.Fprintf(&b, "```%s```\n\n", strings.TrimRight(string(n.Literal), "\n"))
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				b.WriteString("\n")
			}
		case *ast.Link:
			if !entering {
				fmt.Fprintf(&b, " (%s)", n.Destination)
			}
		case *ast.HorizontalRule:
			if entering {
				b.WriteString(ruler + "\n\n")
			}
		case *ast.List:
			if entering {
				counters = append(counters, n.Start)
			} else {
				counters = counters[:len(counters)-1]
				if _, nested := n.Parent.(*ast.ListItem); !nested {
					b.WriteString("\n")
				}
			}
		case *ast.ListItem:
			if entering {
				depth := len(counters) - 1
				b.WriteString(strings.Repeat("  ", depth))
				if n.ListFlags&ast.ListTypeOrdered != 0 {
					if counters[depth] == 0 {
						counters[depth] = 1
					}
					fmt.Fprintf(&b, "%d. ", counters[depth])
					counters[depth]++
				} else {
					b.WriteString("• ")
				}
			} else if !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
		case *ast.Paragraph:
			if !entering {
				if _, inItem := n.Parent.(*ast.ListItem); inItem {
					b.WriteString("\n")
				} else {
					b.WriteString("\n\n")
				}
			}
		}
		return ast.GoToNext
	})

	out := blankRuns.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(out)
}
