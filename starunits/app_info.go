package starunits

import (
	"fmt"

	"github.com/reusee/scriptrt/sources"
	"go.starlark.net/syntax"
)

const appInfoGlobal = "app_info"

// appInfoOf reads a top-level `app_info = {...}` assignment of literals, so
// the metadata is known before the script runs. Non-literal entries are
// skipped.
func appInfoOf(f *syntax.File) sources.AppInfo {
	info := make(sources.AppInfo)
	for _, stmt := range f.Stmts {
		assign, ok := stmt.(*syntax.AssignStmt)
		if !ok || assign.Op != syntax.EQ {
			continue
		}
		ident, ok := assign.LHS.(*syntax.Ident)
		if !ok || ident.Name != appInfoGlobal {
			continue
		}
		dict, ok := assign.RHS.(*syntax.DictExpr)
		if !ok {
			continue
		}
		for _, expr := range dict.List {
			entry := expr.(*syntax.DictEntry)
			key, ok := entry.Key.(*syntax.Literal)
			if !ok || key.Token != syntax.STRING {
				continue
			}
			value, ok := entry.Value.(*syntax.Literal)
			if !ok {
				continue
			}
			info[key.Value.(string)] = fmt.Sprint(value.Value)
		}
	}
	return info
}
