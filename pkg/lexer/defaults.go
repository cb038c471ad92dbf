package lexer

// Categories of the default rule set. Profiles may introduce any other name.
const (
	CategoryComma        = "comma"
	CategoryComment      = "comment"
	CategoryWhitespace   = "whitespace"
	CategoryFunction     = "function"
	CategoryClassName    = "class name"
	CategoryConstant     = "constant"
	CategoryString       = "string"
	CategorySymbol       = "symbol"
	CategoryNumber       = "number"
	CategoryNewline      = "newline"
	CategoryRightBracket = "right bracket"
	CategoryLeftBracket  = "left bracket"
	CategorySemicolon    = "semicolon"
	CategoryRightBrace   = "right brace"
	CategoryLeftBrace    = "left brace"
	CategoryRightParen   = "right parentheses"
	CategoryLeftParen    = "left parentheses"
	CategoryIdentifier   = "identifier"

	// CategoryUnknown is only produced in tolerant mode
	CategoryUnknown = "unknown"
)

// defaultRules is shared by every profile and never modified after init.
// The order is the matching order: function must be tried before
// identifier so that "foo(" yields a function token. The symbol group
// wraps the whole run so that "+=" is one token.
var defaultRules = []Rule{
	NewRule(CategoryComma, `,`),
	NewRule(CategoryComment, `//[^\n]*`),
	NewRule(CategoryWhitespace, ` +`),
	NewRule(CategoryFunction, `([A-Za-z_]\w*)\s*\(`, 1),
	NewRule(CategoryClassName, `[A-Z](\w)*\b`),
	NewRule(CategoryConstant, `[A-Z_]+\b`),
	NewRule(CategoryString, `"([^"]|\\")*"`),
	NewRule(CategorySymbol, `((?:=|\+|\-|\*|<|>|/|%|&|\||!|\.|\:)+)`, 1),
	NewRule(CategoryNumber, `-?\d+(\.\d+)?`),
	NewRule(CategoryNewline, `\n+`),
	NewRule(CategoryRightBracket, `\]`),
	NewRule(CategoryLeftBracket, `\[`),
	NewRule(CategorySemicolon, `;`),
	NewRule(CategoryRightBrace, `\}`),
	NewRule(CategoryLeftBrace, `\{`),
	NewRule(CategoryRightParen, `\)`),
	NewRule(CategoryLeftParen, `\(`),
	NewRule(CategoryIdentifier, `[a-z_]\w*\b`),
}

// DefaultRules returns a copy of the default rule set in matching order.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}
