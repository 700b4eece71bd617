package directive

import (
	"strings"
)

// Parse extracts every directive in text, in order of appearance.
func Parse(text string) []Directive {
	markers := markerPattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]Directive, 0, len(markers))
	for i, m := range markers {
		bodyEnd := len(text)
		if i+1 < len(markers) {
			bodyEnd = markers[i+1][0]
		}
		out = append(out, Directive{
			Type:   Type(text[m[2]:m[3]]),
			Params: parseParams(text[m[1] : m[1]+sectionEnd(text[m[1]:bodyEnd])]),
		})
	}
	return out
}

// parseParams splits a directive's lines into parameters. Lines that are not
// key lines extend the previous value; before the first key they are ignored.
func parseParams(body string) []Param {
	params := make([]Param, 0)
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := keyLinePattern.FindStringSubmatch(line); m != nil {
			params = append(params, Param{Key: m[1], Value: strings.TrimSpace(m[2])})
			continue
		}
		if len(params) == 0 {
			continue
		}
		last := &params[len(params)-1]
		if last.Value == "" {
			last.Value = strings.TrimSpace(line)
		} else {
			last.Value += "\n" + strings.TrimSpace(line)
		}
	}
	return params
}
