// Package enumvalidator flags string literals assigned to enum-typed struct
// fields. Enum types (Role, TaskStatus, ActivityType, ...) carry a closed set
// of named constants; assigning a raw literal bypasses that set and tends to
// slip invalid values into the database.
package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "enumvalidator",
	Doc:      "reports string literals assigned to enum-typed struct fields",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		assign := n.(*ast.AssignStmt)
		for i, lhs := range assign.Lhs {
			if i >= len(assign.Rhs) {
				break
			}
			sel, ok := lhs.(*ast.SelectorExpr)
			if !ok {
				continue
			}
			lit, ok := assign.Rhs[i].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			if !isStringEnum(pass.TypesInfo.TypeOf(sel)) {
				continue
			}
			pass.Reportf(lit.Pos(), "enum field %s assigned string literal", sel.Sel.Name)
		}
	})

	return nil, nil
}

// isStringEnum reports whether t is a named type whose underlying type is
// string. Plain string fields are not enums and stay exempt.
func isStringEnum(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	basic, ok := named.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.String
}
