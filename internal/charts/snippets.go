// Package charts renders the report page gauges and the Kp timeline image.
package charts

import (
	"encoding/json"
	"fmt"
	"strings"
)

const echartsCDN = `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`

// ChartSnippet represents an embeddable echarts fragment.
// Div holds a single root <div id="..."></div>, Script the <script> block
// that initializes it, and HTML both plus the library tag.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// newSnippet marshals an echarts option and wraps it in a titled gauge item.
func newSnippet(id, title string, height int, option map[string]interface{}) (ChartSnippet, error) {
	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal %s options: %w", id, err)
	}

	div := fmt.Sprintf(`<div id="%s" style="width:100%%;height:%dpx;"></div>`, id, height)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))
	item := fmt.Sprintf("<div class=\"gauge-item\">\n\t<h4>%s</h4>\n\t%s\n</div>", title, div)

	return ChartSnippet{
		ID:     id,
		Title:  title,
		Div:    item,
		Script: script,
		HTML:   echartsCDN + "\n" + item + "\n" + script,
	}, nil
}

// scriptBody strips the surrounding <script> tags.
func scriptBody(script string) string {
	content := strings.TrimSpace(script)
	content = strings.TrimPrefix(content, "<script>")
	content = strings.TrimSuffix(content, "</script>")
	return strings.TrimSpace(content)
}
