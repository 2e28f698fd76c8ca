package navbar

import (
	"regexp"
	"strings"
)

var importDecl = regexp.MustCompile(`<\?import [^?]+\?>`)

// AddImports inserts the missing navigation imports after the last existing
// import declaration and returns the declarations it added. Layouts without
// any import declaration are left alone.
func AddImports(content string) (string, []string) {
	var missing []string
	for _, imp := range requiredImports {
		if !strings.Contains(content, imp.marker) {
			missing = append(missing, imp.decl)
		}
	}
	if len(missing) == 0 {
		return content, nil
	}

	decls := importDecl.FindAllStringIndex(content, -1)
	if len(decls) == 0 {
		return content, nil
	}

	nl := lineEnding(content)
	pos := decls[len(decls)-1][1]
	return content[:pos] + nl + strings.Join(missing, nl) + content[pos:], missing
}
