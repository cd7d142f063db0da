// Package semantic implements the symbol-table builder from spec.md §4.4:
// a walk over the AST that constructs nested, lexically-scoped tables and
// reports redeclarations. Scope kinds and variable kinds are named after
// original_source/headers/semantic.h's ScopeType/VarType enums rather than
// invented from scratch.
package semantic

import "github.com/lukaslampl/space-lang-go/pkg/token"

// ScopeKind names the construct that opened a Table, mirroring
// ScopeType in original_source/headers/semantic.h.
type ScopeKind int

const (
	ScopeMain ScopeKind = iota
	ScopeFunction
	ScopeClass
	ScopeIf
	ScopeCheck
	ScopeIs
	ScopeFor
	ScopeWhile
	ScopeDo
	ScopeVariable
	ScopeFunctionCall
	ScopeConstructor
	ScopeEnum
	ScopeEnumerator
	ScopeExternal
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeMain:
		return "main"
	case ScopeFunction:
		return "function"
	case ScopeClass:
		return "class"
	case ScopeIf:
		return "if"
	case ScopeCheck:
		return "check"
	case ScopeIs:
		return "is"
	case ScopeFor:
		return "for"
	case ScopeWhile:
		return "while"
	case ScopeDo:
		return "do"
	case ScopeVariable:
		return "variable"
	case ScopeFunctionCall:
		return "function_call"
	case ScopeConstructor:
		return "constructor"
	case ScopeEnum:
		return "enum"
	case ScopeEnumerator:
		return "enumerator"
	case ScopeExternal:
		return "external"
	default:
		return "unknown"
	}
}

// VarKind classifies a symbol's declarator shape (spec.md §4.4 step 4,
// collapsed to the four declarator shapes the parse-tree generator
// produces — primitive/custom type names are carried on the entry's Type
// field instead of a VarType enum per entry).
type VarKind int

const (
	VarNormal VarKind = iota
	VarArray
	VarConditional
	VarClassInstance
)

func (k VarKind) String() string {
	switch k {
	case VarArray:
		return "array"
	case VarConditional:
		return "conditional"
	case VarClassInstance:
		return "class-instance"
	default:
		return "normal"
	}
}

// Entry is one symbol-table record (spec.md §3.5): name, literal value (if
// resolvable at this pass), declared type, dimension, const flag,
// visibility, scope kind, and a source position for diagnostics.
type Entry struct {
	Name       string
	Value      string
	Type       string
	Custom     bool
	Dimension  int
	Const      bool
	Visibility string
	Kind       VarKind
	ScopeKind  ScopeKind
	Pos        token.Position
}

// Table is a lexically-scoped symbol table. Parent is a non-owning
// back-reference (spec.md §4.4 "Parent links"): tables are owned by the
// Analyzer that built them, never by each other.
type Table struct {
	Kind    ScopeKind
	Name    string
	Pos     token.Position
	Parent   *Table
	symbols  map[string]*Entry
	Params   map[string]*Entry // function/constructor parameters, kept separate per original_source's paramTable
	Children []*Table
}

// NewTable constructs an empty scope of the given kind under parent (nil
// for the root/main table).
func NewTable(kind ScopeKind, name string, pos token.Position, parent *Table) *Table {
	t := &Table{
		Kind:    kind,
		Name:    name,
		Pos:     pos,
		Parent:  parent,
		symbols: make(map[string]*Entry),
		Params:  make(map[string]*Entry),
	}
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
	return t
}

// InsertParam adds entry to this table's parameter map, distinct from its
// ordinary symbol map (spec.md §4.4 "Nested scopes"; original_source keeps
// a function scope's paramTable separate from its symbolTable).
func (t *Table) InsertParam(entry *Entry) {
	t.Params[entry.Name] = entry
}

// Lookup walks this table and its parent chain, returning the first entry
// found under name (spec.md §3.5 "Key invariant").
func (t *Table) Lookup(name string) (*Entry, bool) {
	for s := t; s != nil; s = s.Parent {
		if e, ok := s.symbols[name]; ok {
			return e, true
		}
		if e, ok := s.Params[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// Resolves reports whether name is already bound anywhere in the chain
// rooted at t — used for redeclaration checks, which in this Language
// forbid shadowing entirely (spec.md §3.5).
func (t *Table) Resolves(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Insert adds entry to this table's own symbol map. Callers must check
// Resolves first (Analyzer.insertOrReport does); Insert itself does not
// re-check. Function and constructor parameters go through InsertParam.
func (t *Table) Insert(entry *Entry) {
	t.symbols[entry.Name] = entry
}

// Symbols returns this table's own entries (not its parent's), for
// diagnostics and tests.
func (t *Table) Symbols() map[string]*Entry {
	return t.symbols
}
