// Package rawsql содержит анализатор, запрещающий собирать текст SQL-запроса
// конкатенацией строк или через fmt.Sprintf. Значения передаются только
// именованными параметрами.
package rawsql

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// RawSQLAnalyzer проверяет аргумент query у методов шлюза и database/sql
var RawSQLAnalyzer = &analysis.Analyzer{
	Name: "rawsql",
	Doc:  "запрещает собирать текст SQL-запроса конкатенацией или fmt.Sprintf",
	Run:  run,
}

// queryMethods методы, у которых второй аргумент (после ctx) это текст запроса
var queryMethods = map[string]bool{
	"ExecReturningID": true,
	"FetchOne":        true,
	"QueryRowContext": true,
	"QueryContext":    true,
	"ExecContext":     true,
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || !queryMethods[sel.Sel.Name] || len(call.Args) < 2 {
				return true
			}
			if isBuilt(pass, call.Args[1]) {
				pass.Reportf(call.Args[1].Pos(), "текст запроса для %s собран динамически, используйте именованные параметры", sel.Sel.Name)
			}
			return true
		})
	}
	return nil, nil
}

// isBuilt сообщает, собрана ли строка во время выполнения
func isBuilt(pass *analysis.Pass, expr ast.Expr) bool {
	if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
		return false
	}

	switch e := expr.(type) {
	case *ast.ParenExpr:
		return isBuilt(pass, e.X)
	case *ast.BinaryExpr:
		return e.Op == token.ADD
	case *ast.CallExpr:
		sel, ok := e.Fun.(*ast.SelectorExpr)
		if !ok {
			return false
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return false
		}
		pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok || pkg.Imported().Path() != "fmt" {
			return false
		}
		return sel.Sel.Name == "Sprintf" || sel.Sel.Name == "Sprint"
	}
	return false
}
