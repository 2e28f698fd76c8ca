package navbar

import (
	"path"
	"regexp"
	"strings"
)

var stylesheetsAttr = regexp.MustCompile(`stylesheets="([^"]*)"`)

// AddStylesheet appends ref to the first stylesheets attribute. It is a no-op
// when the stylesheet's file name already occurs anywhere in the text, or when
// the layout has no stylesheets attribute.
func AddStylesheet(content, ref string) (string, bool) {
	if strings.Contains(content, stylesheetName(ref)) {
		return content, false
	}

	loc := stylesheetsAttr.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, false
	}

	valueStart, valueEnd := loc[2], loc[3]
	addition := ref
	if strings.TrimSpace(content[valueStart:valueEnd]) != "" {
		addition = "," + ref
	}

	return content[:valueEnd] + addition + content[valueEnd:], true
}

// stylesheetName strips the FXML location prefix and directories from a
// stylesheet reference: "@../../css/navigation.css" -> "navigation.css".
func stylesheetName(ref string) string {
	return path.Base(strings.TrimPrefix(ref, "@"))
}
