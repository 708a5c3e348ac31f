package render

import (
	"html/template"
	"strconv"

	"github.com/beevik/etree"
)

var funcs = template.FuncMap{
	"skillbar": skillBar,
}

// skillBar draws a proficiency as an inline SVG track filled to
// Percent of its width.
func skillBar(p Proficiency) template.HTML {
	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("class", "skill-bar")
	svg.CreateAttr("viewBox", "0 0 100 6")
	svg.CreateAttr("preserveAspectRatio", "none")
	svg.CreateAttr("role", "img")
	svg.CreateAttr("aria-label", p.Label)

	track := svg.CreateElement("rect")
	track.CreateAttr("class", "track")
	track.CreateAttr("width", "100")
	track.CreateAttr("height", "6")
	track.CreateAttr("rx", "3")

	fill := svg.CreateElement("rect")
	fill.CreateAttr("class", "fill")
	fill.CreateAttr("width", strconv.Itoa(p.Percent))
	fill.CreateAttr("height", "6")
	fill.CreateAttr("rx", "3")

	out, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return template.HTML(out)
}
