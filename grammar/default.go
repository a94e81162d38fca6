package grammar

// Default returns the built-in Cyl grammar.
// Each call returns a fresh value that the caller may modify.
func Default() *Grammar {
	return &Grammar{
		Name:    "Cyl",
		Version: "0.1.0",
		Keywords: []Keyword{
			{Value: "fn", Type: "FunctionDeclaration", Description: "Function declaration"},
			{Value: "if", Type: "IfStatement", Description: "Conditional statement"},
			{Value: "else", Type: "ElseStatement", Description: "Alternative branch"},
			{Value: "import", Type: "ImportStatement", Description: "Module import"},
			{Value: "return", Type: "ReturnStatement", Description: "Return from function"},
			{Value: "struct", Type: "StructDeclaration", Description: "Structure type definition"},
			{Value: "enum", Type: "EnumDeclaration", Description: "Enumeration type definition"},
			{Value: "match", Type: "MatchStatement", Description: "Pattern matching"},
			{Value: "for", Type: "ForStatement", Description: "Loop statement"},
			{Value: "while", Type: "WhileStatement", Description: "While loop"},
			{Value: "break", Type: "BreakStatement", Description: "Break from loop"},
			{Value: "continue", Type: "ContinueStatement", Description: "Continue loop"},
			{Value: "try", Type: "TryStatement", Description: "Exception handling"},
			{Value: "catch", Type: "CatchStatement", Description: "Exception catching"},
			{Value: "throw", Type: "ThrowStatement", Description: "Throw exception"},
			{Value: "async", Type: "AsyncFunctionDeclaration", Description: "Async function"},
			{Value: "await", Type: "AwaitExpression", Description: "Await async operation"},
			{Value: "void", Type: "VoidType", Description: "Void type"},
			{Value: "declare", Type: "DeclareStatement", Description: "Variable declaration"},
			{Value: "let", Type: "DeclareStatement", Description: "Variable declaration"},
			{Value: "const", Type: "DeclareStatement", Description: "Constant declaration"},
			{Value: "mut", Type: "MutabilityModifier", Description: "Mutable modifier"},
		},
		Operators: []Operator{
			// Arithmetic
			{Symbol: "+", Arity: ArityBinary, Precedence: 6, Associativity: AssocLeft, Description: "Addition"},
			{Symbol: "-", Arity: ArityBinary, Precedence: 6, Associativity: AssocLeft, Description: "Subtraction"},
			{Symbol: "*", Arity: ArityBinary, Precedence: 7, Associativity: AssocLeft, Description: "Multiplication"},
			{Symbol: "/", Arity: ArityBinary, Precedence: 7, Associativity: AssocLeft, Description: "Division"},
			{Symbol: "%", Arity: ArityBinary, Precedence: 7, Associativity: AssocLeft, Description: "Modulo"},

			// Comparison
			{Symbol: "==", Arity: ArityBinary, Precedence: 4, Associativity: AssocLeft, Description: "Equality"},
			{Symbol: "!=", Arity: ArityBinary, Precedence: 4, Associativity: AssocLeft, Description: "Inequality"},
			{Symbol: "<", Arity: ArityBinary, Precedence: 5, Associativity: AssocLeft, Description: "Less than"},
			{Symbol: "<=", Arity: ArityBinary, Precedence: 5, Associativity: AssocLeft, Description: "Less than or equal"},
			{Symbol: ">", Arity: ArityBinary, Precedence: 5, Associativity: AssocLeft, Description: "Greater than"},
			{Symbol: ">=", Arity: ArityBinary, Precedence: 5, Associativity: AssocLeft, Description: "Greater than or equal"},

			// Logical
			{Symbol: "&&", Arity: ArityBinary, Precedence: 3, Associativity: AssocLeft, Description: "Logical AND"},
			{Symbol: "||", Arity: ArityBinary, Precedence: 2, Associativity: AssocLeft, Description: "Logical OR"},
			{Symbol: "!", Arity: ArityUnary, Precedence: 8, Associativity: AssocRight, Description: "Logical NOT"},

			// Bitwise
			{Symbol: "&", Arity: ArityBinary, Precedence: 4, Associativity: AssocLeft, Description: "Bitwise AND"},
			{Symbol: "|", Arity: ArityBinary, Precedence: 2, Associativity: AssocLeft, Description: "Bitwise OR"},
			{Symbol: "^", Arity: ArityBinary, Precedence: 3, Associativity: AssocLeft, Description: "Bitwise XOR"},
			{Symbol: "<<", Arity: ArityBinary, Precedence: 6, Associativity: AssocLeft, Description: "Left shift"},
			{Symbol: ">>", Arity: ArityBinary, Precedence: 6, Associativity: AssocLeft, Description: "Right shift"},
			{Symbol: "~", Arity: ArityUnary, Precedence: 8, Associativity: AssocRight, Description: "Bitwise NOT"},

			// Assignment
			{Symbol: "=", Arity: ArityBinary, Precedence: 1, Associativity: AssocRight, Description: "Assignment"},

			// Other
			{Symbol: "->", Arity: ArityBinary, Precedence: 9, Associativity: AssocLeft, Description: "Return type indicator"},
			{Symbol: ".", Arity: ArityBinary, Precedence: 10, Associativity: AssocLeft, Description: "Member access"},
		},
		SyntaxRules: []SyntaxRule{
			{
				Name:        "FunctionDeclaration",
				Pattern:     "[async] fn <identifier> ( [parameters] ) [-> <type>] { <statements> }",
				Description: "Function declaration syntax",
				Examples: []string{
					"fn main() -> void {}",
					"async fn fetchData() -> string {}",
					"fn add(a: int, b: int) -> int { return a + b; }",
				},
			},
			{
				Name:        "VariableDeclaration",
				Pattern:     "[let|const] [mut] <identifier> [: <type>] = <expression>",
				Description: "Variable declaration syntax",
				Examples: []string{
					"let x = 5;",
					`const mut name: string = "John";`,
					"let result: int = calculate();",
				},
			},
			{
				Name:        "IfStatement",
				Pattern:     "if <expression> { <statements> } [else <statement>]",
				Description: "Conditional statement syntax",
				Examples: []string{
					`if x > 0 { print("positive"); }`,
					"if condition { doSomething(); } else { doOther(); }",
				},
			},
			{
				Name:        "Import",
				Pattern:     "import <module> [{ <items> }]",
				Description: "Module import syntax",
				Examples: []string{
					"import net;",
					"import os { print, exit };",
				},
			},
		},
		Types: []TypeDef{
			{Name: "int", Kind: KindPrimitive, Description: "Signed integer type"},
			{Name: "float", Kind: KindPrimitive, Description: "Floating point number type"},
			{Name: "string", Kind: KindPrimitive, Description: "UTF-8 string type"},
			{Name: "bool", Kind: KindPrimitive, Description: "Boolean type"},
			{Name: "char", Kind: KindPrimitive, Description: "Unicode character type"},
			{Name: "void", Kind: KindPrimitive, Description: "No value type"},
			{Name: "Array<T>", Kind: KindGeneric, Description: "Dynamic array type"},
			{Name: "Option<T>", Kind: KindGeneric, Description: "Optional value type"},
		},
	}
}
