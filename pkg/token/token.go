// Package token defines the lexical vocabulary of the SPACE language: token
// kinds, source positions, and the keyword table the lexer consults once an
// identifier's lexeme is complete.
package token

import "fmt"

// Kind identifies the lexical category of a Token. The zero value is EOF so
// a zero Token is never mistaken for a real, unset one.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT
	NUMBER
	FLOAT
	STRING
	CHARARRAY

	// keywords
	KwWhile
	KwIf
	KwFunction
	KwVar
	KwBreak
	KwReturn
	KwDo
	KwClass
	KwWith
	KwNew
	KwTrue
	KwFalse
	KwNull
	KwEnum
	KwCheck
	KwIs
	KwTry
	KwCatch
	KwContinue
	KwConst
	KwInclude
	KwAnd
	KwOr
	KwGlobal
	KwSecure
	KwPrivate
	KwExport
	KwFor
	KwThis
	KwElse
	KwConstructor
	KwInt
	KwDouble
	KwFloat
	KwChar
	KwString
	KwBoolean
	KwShort
	KwLong
	KwExtends

	// single operators
	Plus
	Minus
	Star
	Slash
	Percent
	Dot
	Comma
	Semicolon
	Colon
	Question
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Assign
	Less
	Greater
	Bang
	Amp
	Dollar

	// double operators
	EqEq
	NotEq
	LessEq
	GreaterEq
	Inc
	Dec
	PlusEq
	MinusEq
	StarEq
	SlashEq
	ClassAccessor // ->
	ClassCreator  // =>

	// pointer / reference constructs
	Pointer          // run of '*' immediately followed by a value-starting byte
	Reference        // lone '&'
	ReferenceToPointer // &(*...)
)

var kindNames = map[Kind]string{
	EOF: "EOF", ILLEGAL: "ILLEGAL",
	IDENT: "IDENT", NUMBER: "NUMBER", FLOAT: "FLOAT", STRING: "STRING", CHARARRAY: "CHARARRAY",
	KwWhile: "while", KwIf: "if", KwFunction: "function", KwVar: "var", KwBreak: "break",
	KwReturn: "return", KwDo: "do", KwClass: "class", KwWith: "with", KwNew: "new",
	KwTrue: "true", KwFalse: "false", KwNull: "null", KwEnum: "enum", KwCheck: "check",
	KwIs: "is", KwTry: "try", KwCatch: "catch", KwContinue: "continue", KwConst: "const",
	KwInclude: "include", KwAnd: "and", KwOr: "or", KwGlobal: "global", KwSecure: "secure",
	KwPrivate: "private", KwExport: "export", KwFor: "for", KwThis: "this", KwElse: "else",
	KwConstructor: "constructor", KwInt: "int", KwDouble: "double", KwFloat: "float",
	KwChar: "char", KwString: "String", KwBoolean: "boolean", KwShort: "short", KwLong: "long",
	KwExtends: "extends",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Dot: ".", Comma: ",",
	Semicolon: ";", Colon: ":", Question: "?", LParen: "(", RParen: ")", LBrace: "{",
	RBrace: "}", LBracket: "[", RBracket: "]", Assign: "=", Less: "<", Greater: ">",
	Bang: "!", Amp: "&", Dollar: "$",
	EqEq: "==", NotEq: "!=", LessEq: "<=", GreaterEq: ">=", Inc: "++", Dec: "--",
	PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=",
	ClassAccessor: "->", ClassCreator: "=>",
	Pointer: "POINTER", Reference: "REFERENCE", ReferenceToPointer: "REFERENCE_TO_POINTER",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps a lowercase-sensitive lexeme to its keyword Kind. The
// Language is case-sensitive for keywords (unlike the DWScript teacher),
// matching spec.md §3.2's closed keyword list verbatim.
var Keywords = map[string]Kind{
	"while": KwWhile, "if": KwIf, "function": KwFunction, "var": KwVar,
	"break": KwBreak, "return": KwReturn, "do": KwDo, "class": KwClass,
	"with": KwWith, "new": KwNew, "true": KwTrue, "false": KwFalse,
	"null": KwNull, "enum": KwEnum, "check": KwCheck, "is": KwIs,
	"try": KwTry, "catch": KwCatch, "continue": KwContinue, "const": KwConst,
	"include": KwInclude, "and": KwAnd, "or": KwOr, "global": KwGlobal,
	"secure": KwSecure, "private": KwPrivate, "export": KwExport, "for": KwFor,
	"this": KwThis, "else": KwElse, "constructor": KwConstructor, "int": KwInt,
	"double": KwDouble, "float": KwFloat, "char": KwChar, "String": KwString,
	"boolean": KwBoolean, "short": KwShort, "long": KwLong, "extends": KwExtends,
}

// DoubleOperators is the grammar-derived table of recognized two-character
// operators (spec.md §4.2's precedence table plus the accessor/creator
// forms). Re-derived directly from the grammar rather than the original
// implementation's handwritten pairwise comparison (Open Question 3).
var DoubleOperators = map[[2]byte]Kind{
	{'+', '='}: PlusEq, {'-', '='}: MinusEq, {'*', '='}: StarEq, {'/', '='}: SlashEq,
	{'=', '='}: EqEq, {'!', '='}: NotEq, {'<', '='}: LessEq, {'>', '='}: GreaterEq,
	{'+', '+'}: Inc, {'-', '-'}: Dec, {'-', '>'}: ClassAccessor, {'=', '>'}: ClassCreator,
}

// Primitives is the closed set of primitive type-name keywords (spec.md §3.4).
var Primitives = map[string]bool{
	"int": true, "double": true, "float": true, "char": true,
	"boolean": true, "String": true, "short": true, "long": true,
}

// Position is the (line, column, byte-offset, length) quadruple every token
// and AST node carries (spec.md §3.1). Lines are 1-based; columns are
// 1-based rune counts from the start of the line.
type Position struct {
	Line   int
	Column int
	Offset int
	Length int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the tagged record produced by the lexer: kind, exact lexeme, and
// source position (spec.md §3.2).
type Token struct {
	Kind  Kind
	Text  string
	Pos   Position
}

func New(kind Kind, text string, pos Position) Token {
	pos.Length = len(text)
	return Token{Kind: kind, Text: text, Pos: pos}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Pos)
}

// IsKeyword reports whether lexeme names a keyword, returning its Kind.
func IsKeyword(lexeme string) (Kind, bool) {
	k, ok := Keywords[lexeme]
	return k, ok
}
