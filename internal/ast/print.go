package ast

import (
	"fmt"
	"strings"
)

// Print renders node as an indented s-expression tree. It is used by the
// CLI's `parse` command and by snapshot tests (internal/ast/print_test.go)
// to pin AST shape without depending on Go struct layout.
func Print(node Node) string {
	var sb strings.Builder
	print(&sb, node, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func print(sb *strings.Builder, node Node, depth int) {
	indent(sb, depth)
	if node == nil {
		sb.WriteString("<nil>\n")
		return
	}
	switch n := node.(type) {
	case *Program:
		sb.WriteString("Program\n")
		for _, s := range n.Statements {
			print(sb, s, depth+1)
		}
	case *BlockStatement:
		sb.WriteString("Runnable\n")
		for _, s := range n.Statements {
			print(sb, s, depth+1)
		}
	case *Identifier:
		fmt.Fprintf(sb, "Identifier(%s)\n", n.Name)
	case *NumberLiteral:
		fmt.Fprintf(sb, "Number(%s)\n", n.Text)
	case *FloatLiteral:
		fmt.Fprintf(sb, "Float(%s)\n", n.Text)
	case *StringLiteral:
		fmt.Fprintf(sb, "String(%s)\n", n.Text)
	case *CharArrayLiteral:
		fmt.Fprintf(sb, "CharArray(%s)\n", n.Text)
	case *BoolLiteral:
		fmt.Fprintf(sb, "Bool(%v)\n", n.Value)
	case *NullLiteral:
		sb.WriteString("Null\n")
	case *BinaryExpression:
		fmt.Fprintf(sb, "Binary(%s)\n", n.OpText)
		print(sb, n.Left, depth+1)
		print(sb, n.Right, depth+1)
	case *ConditionExpression:
		fmt.Fprintf(sb, "Condition(%s)\n", n.OpText)
		print(sb, n.Left, depth+1)
		print(sb, n.Right, depth+1)
	case *LogicalExpression:
		fmt.Fprintf(sb, "Logical(%s)\n", n.Op)
		print(sb, n.Left, depth+1)
		print(sb, n.Right, depth+1)
	case *TernaryExpression:
		sb.WriteString("CondAssign(?)\n")
		print(sb, n.Cond, depth+1)
		print(sb, n.True, depth+1)
		print(sb, n.False, depth+1)
	case *AssignmentExpression:
		fmt.Fprintf(sb, "Assign(%s)\n", n.OpText)
		print(sb, n.Target, depth+1)
		print(sb, n.Value, depth+1)
	case *IncDecExpression:
		fmt.Fprintf(sb, "SimpleIncDec(%s prefix=%v)\n", n.Op, n.Prefix)
		print(sb, n.Operand, depth+1)
	case *MemberAccessExpression:
		sb.WriteString("MemberAccess(.)\n")
		print(sb, n.Left, depth+1)
		print(sb, n.Right, depth+1)
	case *ClassAccessExpression:
		sb.WriteString("ClassAccess(->)\n")
		print(sb, n.Left, depth+1)
		print(sb, n.Right, depth+1)
	case *ArrayAccessExpression:
		sb.WriteString("ArrayAccess(ARR_ACC)\n")
		print(sb, n.Target, depth+1)
		print(sb, n.Index, depth+1)
	case *FunctionCallExpression:
		fmt.Fprintf(sb, "FunctionCall(%s)\n", n.Name)
		for _, a := range n.Args {
			print(sb, a, depth+1)
		}
	case *PointerExpression:
		fmt.Fprintf(sb, "Pointer(%d)\n", n.Stars)
		print(sb, n.Operand, depth+1)
	case *ReferenceExpression:
		sb.WriteString("Reference\n")
		print(sb, n.Operand, depth+1)
	case *ReferenceToPointerExpression:
		sb.WriteString("ReferenceToPointer\n")
		print(sb, n.Operand, depth+1)
	case *NewClassInstanceExpression:
		fmt.Fprintf(sb, "Inherited(%s)\n", n.ClassName)
		for _, a := range n.Args {
			print(sb, a, depth+1)
		}
	case *ArrayLiteral:
		fmt.Fprintf(sb, "ArrayAssign(d:%d)\n", n.Depth)
		for _, e := range n.Elements {
			print(sb, e, depth+1)
		}
	case *ExpressionStatement:
		sb.WriteString("ExprStmt\n")
		print(sb, n.Expr, depth+1)
	case *VarStatement:
		fmt.Fprintf(sb, "Var(%s const=%v vis=%s)\n", n.Name, n.Const, n.Visibility)
		if n.Type != nil {
			print(sb, n.Type, depth+1)
		}
		if n.Value != nil {
			print(sb, n.Value, depth+1)
		}
	case *ArrayVarStatement:
		fmt.Fprintf(sb, "ArrayVar(%s dims=%d)\n", n.Name, len(n.Dims))
		if n.Init != nil {
			print(sb, n.Init, depth+1)
		}
	case *CondVarStatement:
		fmt.Fprintf(sb, "CondVar(%s)\n", n.Name)
		print(sb, n.Value, depth+1)
	case *ClassInstanceStatement:
		fmt.Fprintf(sb, "VarClassInstance(%s)\n", n.Name)
		print(sb, n.Value, depth+1)
	case *ReturnStatement:
		sb.WriteString("Return\n")
		if n.Value != nil {
			print(sb, n.Value, depth+1)
		}
	case *BreakStatement:
		sb.WriteString("Break\n")
	case *ContinueStatement:
		sb.WriteString("Continue\n")
	case *IncludeStatement:
		fmt.Fprintf(sb, "Include(%s)\n", n.Path)
	case *ExportStatement:
		fmt.Fprintf(sb, "Export(%s)\n", n.Path)
	case *IfStatement:
		sb.WriteString("IfStmt\n")
		print(sb, n.Cond, depth+1)
		print(sb, n.Body, depth+1)
		for _, e := range n.ElseIfs {
			indent(sb, depth+1)
			sb.WriteString("ElseIfStmt\n")
			print(sb, e.Cond, depth+2)
			print(sb, e.Body, depth+2)
		}
		if n.Else != nil {
			indent(sb, depth+1)
			sb.WriteString("ElseStmt\n")
			print(sb, n.Else, depth+2)
		}
	case *WhileStatement:
		sb.WriteString("WhileStmt\n")
		print(sb, n.Cond, depth+1)
		print(sb, n.Body, depth+1)
	case *DoStatement:
		sb.WriteString("DoStmt\n")
		print(sb, n.Cond, depth+1)
		print(sb, n.Body, depth+1)
	case *ForStatement:
		sb.WriteString("ForStmt\n")
		if n.Init != nil {
			print(sb, n.Init, depth+1)
		}
		print(sb, n.Cond, depth+1)
		print(sb, n.Step, depth+1)
		print(sb, n.Body, depth+1)
	case *CheckStatement:
		sb.WriteString("CheckStmt\n")
		print(sb, n.Subject, depth+1)
		for _, c := range n.Cases {
			indent(sb, depth+1)
			sb.WriteString("IsStmt\n")
			print(sb, c.Value, depth+2)
			print(sb, c.Body, depth+2)
		}
	case *TryStatement:
		sb.WriteString("Try\n")
		print(sb, n.Body, depth+1)
		if n.Catch != nil {
			indent(sb, depth+1)
			sb.WriteString("Catch\n")
			print(sb, n.Catch.Name, depth+2)
			if n.Catch.Type != nil {
				print(sb, n.Catch.Type, depth+2)
			}
			print(sb, n.Catch.Body, depth+2)
		}
	case *FunctionDeclaration:
		fmt.Fprintf(sb, "Function(%s vis=%s)\n", n.Name, n.Visibility)
		if n.RetType != nil {
			print(sb, n.RetType, depth+1)
		}
		for _, p := range n.Params {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Param(%s)\n", p.Name)
			if p.Type != nil {
				print(sb, p.Type, depth+2)
			}
		}
		print(sb, n.Body, depth+1)
	case *ConstructorDeclaration:
		sb.WriteString("Constructor\n")
		for _, p := range n.Params {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Param(%s)\n", p.Name)
		}
		print(sb, n.Body, depth+1)
	case *ClassDeclaration:
		fmt.Fprintf(sb, "Class(%s vis=%s)\n", n.Name, n.Visibility)
		if n.Extends != nil {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Inheritance(%s)\n", n.Extends.Name)
		}
		for _, i := range n.Implements {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Interface(%s)\n", i.Name)
		}
		print(sb, n.Body, depth+1)
	case *EnumDeclaration:
		fmt.Fprintf(sb, "Enum(%s)\n", n.Name)
		for _, m := range n.Members {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Enumerator(%s)\n", m.Name)
			if m.Value != nil {
				print(sb, m.Value, depth+2)
			}
		}
	case *TypeAnnotation:
		fmt.Fprintf(sb, "VarType(%s custom=%v)\n", n.Name, n.Custom)
	default:
		fmt.Fprintf(sb, "%T\n", n)
	}
}
