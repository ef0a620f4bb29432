package gen

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/parsekit/parsekit/rules"
)

// BindEntryPoint rewires the template function named method so that its
// first statement invokes the compiler-generated method for rule. The
// first statement must be a short variable declaration with exactly one
// name and one initializer; its initializer is replaced with a call
// through the function's first parameter. Any other shape means the
// template was edited incompatibly and yields a StructuralMismatchError.
func BindEntryPoint(f *ast.File, method, rule string) error {
	fn := findFunc(f, method)
	if fn == nil {
		return &StructuralMismatchError{Detail: fmt.Sprintf("function %s not found", method)}
	}
	if fn.Body == nil || len(fn.Body.List) == 0 {
		return &StructuralMismatchError{Detail: fmt.Sprintf("function %s has an empty body", method)}
	}

	recv, err := firstParamName(fn)
	if err != nil {
		return err
	}

	assign, ok := fn.Body.List[0].(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE {
		return &StructuralMismatchError{
			Detail: fmt.Sprintf("first statement of %s is not a variable declaration", method),
		}
	}
	if len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return &StructuralMismatchError{
			Detail: fmt.Sprintf("first statement of %s must declare exactly one variable", method),
		}
	}

	assign.Rhs[0] = &ast.CallExpr{
		Fun: &ast.SelectorExpr{
			X:   ast.NewIdent(recv),
			Sel: ast.NewIdent(rules.Exported(rule)),
		},
	}
	return nil
}

func findFunc(f *ast.File, name string) *ast.FuncDecl {
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == name {
			return fn
		}
	}
	return nil
}

func firstParamName(fn *ast.FuncDecl) (string, error) {
	if fn.Type.Params == nil || len(fn.Type.Params.List) == 0 || len(fn.Type.Params.List[0].Names) == 0 {
		return "", &StructuralMismatchError{
			Detail: fmt.Sprintf("function %s has no named parameter to call through", fn.Name.Name),
		}
	}
	return fn.Type.Params.List[0].Names[0].Name, nil
}
