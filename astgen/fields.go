package astgen

// field is one property of a statement node.
// TS and Rust hold the property type in each target language.
type field struct {
	Name     string
	TS       string
	Rust     string
	Optional bool
}

func rustType(f field) string {
	if f.Optional {
		return "Option<" + f.Rust + ">"
	}

	return f.Rust
}

func tsField(f field) string {
	if f.Optional {
		return f.Name + "?: " + f.TS
	}

	return f.Name + ": " + f.TS
}

// statementFields lists the properties of the statement nodes with a known
// shape. Other statement nodes are declared without properties.
var statementFields = map[string][]field{
	"FunctionDeclaration": {
		{Name: "name", TS: "string", Rust: "String"},
		{Name: "parameters", TS: "Array<{ name: string; type?: string }>", Rust: "Vec<(String, Option<String>)>"},
		{Name: "returnType", TS: "string", Rust: "String", Optional: true},
		{Name: "body", TS: "Statement[]", Rust: "Vec<Statement>"},
		{Name: "isAsync", TS: "boolean", Rust: "bool", Optional: true},
	},
	"IfStatement": {
		{Name: "condition", TS: "Expression", Rust: "Expression"},
		{Name: "thenBranch", TS: "Statement", Rust: "Box<Statement>"},
		{Name: "elseBranch", TS: "Statement", Rust: "Box<Statement>", Optional: true},
	},
	"ImportStatement": {
		{Name: "module", TS: "string", Rust: "String"},
		{Name: "items", TS: "string[]", Rust: "Vec<String>", Optional: true},
	},
	"ReturnStatement": {
		{Name: "value", TS: "Expression", Rust: "Expression", Optional: true},
	},
	"StructDeclaration": {
		{Name: "name", TS: "string", Rust: "String"},
		{Name: "fields", TS: "Array<{ name: string; type: string; isPublic?: boolean }>", Rust: "Vec<(String, String, bool)>"},
	},
	"EnumDeclaration": {
		{Name: "name", TS: "string", Rust: "String"},
		{Name: "variants", TS: "Array<{ name: string; fields?: string[] }>", Rust: "Vec<(String, Vec<String>)>"},
	},
	"MatchStatement": {
		{Name: "expression", TS: "Expression", Rust: "Expression"},
		{Name: "arms", TS: "Array<{ pattern: string; body: Statement }>", Rust: "Vec<(String, Statement)>"},
	},
	"ForStatement": {
		{Name: "variable", TS: "string", Rust: "String"},
		{Name: "iterable", TS: "Expression", Rust: "Expression"},
		{Name: "body", TS: "Statement", Rust: "Box<Statement>"},
	},
	"WhileStatement": {
		{Name: "condition", TS: "Expression", Rust: "Expression"},
		{Name: "body", TS: "Statement", Rust: "Box<Statement>"},
	},
	"DeclareStatement": {
		{Name: "name", TS: "string", Rust: "String"},
		{Name: "valueType", TS: "string", Rust: "String", Optional: true},
		{Name: "value", TS: "Expression", Rust: "Expression"},
		{Name: "isMutable", TS: "boolean", Rust: "bool", Optional: true},
	},
}
