package languages

import "github.com/cybertec-postgresql/tokscan/pkg/lexer"

// Keyword lists are configuration data. They are kept as the profiles
// have always shipped them, including the odd entry.

var Assembly = lexer.NewProfile("assembly", nil,
	lexer.WithExtensions(".asm", ".s"))

var C = lexer.NewProfile("c", []lexer.Rule{
	lexer.NewRule("keyword", `(auto|break|case|char|const|continue|default|do|double|else|enum|extern|float|for|goto|if|int|long|register|return|short|signed|sizeof|static|struct|switch|typedef|union|unsigned|void|volatile|while)\b`),
	lexer.NewRule("directive", `#[a-z]+\s*<.+?>`),
}, lexer.WithExtensions(".c", ".h"))

var Cpp = lexer.NewProfile("cpp", []lexer.Rule{
	lexer.NewRule("keyword", `(alignas|alignof|and|and_eq|asm|atomic|cancel|atomic|commit|atomic|noexcept|auto|bitand|bitor|bool|break|case|catch|char|char8_t|char16_t|char32_t|class|compl|concept|const|consteval|constexpr|constinit|const_cast|continue|co_await|co_return|co_yield|decltype|default|delete|do|double|dynaimc_cast|else|enum|explicit|export|extern|float|for|friend|goto|if|inline|int|long|mutable|namespace|new|noexcept|not|not_eq|nullptr|operator|or|or_eq|private|protected|public|reflexpr|register|reinterpret_cast|requires|return|short|signed|sizeof|static|static_assert|static_cast|struct|switch|synchronized|template|thread_local|throw|try|typedef|typeid|typename|union|unsigned|using|virtual|void|volatile|wchar_t|while|xor|xor_eq)\b`),
	lexer.NewRule("keyword literal", `(false|nullptr|this|true)\b`),
}, lexer.WithExtensions(".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"))

var CSharp = lexer.NewProfile("csharp", []lexer.Rule{
	lexer.NewRule("keyword", `(abstract|as|base|bool|break|byte|case|catch|char|checked|class|const|continue|decimal|default|delegate|do|double|else|enum|event|explicit|extern|finally|fixed|float|for|foreach|goto|if|implicit|in|int|interface|internal|is|lock|long|namespace|new|object|operator|out|override|params|private|protected|public|readonly|ref|return|sbyte|sealed|short|sizeof|stackalloc|static|string|struct|switch|throw|try|typeof|uint|ulong|unchecked|unsafe|ushort|using|using|static|void|volatile|while)\b`),
	lexer.NewRule("keyword literal", `(false|null|this|true)\b`),
}, lexer.WithExtensions(".cs"))

var Fortran = lexer.NewProfile("fortran", []lexer.Rule{
	lexer.NewRule("keyword", `(assign|backspace|block|call|close|common|continue|data|dimension|do|else|if|integer|end|endfile|endif|entry|equivalence|external|format|function|goto|if|implicit|inquire|intrinsic|open|parameter|pause|print|program|read|return|rewind|rewrite|save|stop|subroutine|then|write)\b`),
	lexer.NewRule("comment", `![^\n]*`),
	lexer.NewRule("symbol", `((=|\+|\-|\*|<|>|/|%|&|\||!|\.|\:)+|\.[A-Z]+\.)`),
}, lexer.WithExtensions(".f", ".for", ".f90", ".f95"))

var Go = lexer.NewProfile("go", []lexer.Rule{
	lexer.NewRule("keyword", `(break|case|chan|const|continue|default|defer|else|fallthrough|for|func|go|goto|if|import|interface|map|package|range|return|select|struct|switch|type|var)\b`),
}, lexer.WithExtensions(".go"))

var Haskell = lexer.NewProfile("haskell", []lexer.Rule{
	lexer.NewRule("keyword", "(case|class|data|default|deriving|do|else|forall|if|import|in|infix|infixl|infixr|instance|let|module|newtype|of|qualified|then|type|where|_|foreign|ccall|as|safe|unsafe`)\\b"),
}, lexer.WithExtensions(".hs"))

var Java = lexer.NewProfile("java", []lexer.Rule{
	lexer.NewRule("keyword", `(abstract|assert|boolean|break|byte|case|catch|char|class|continue|default|do|double|else|enum|extends|final|finally|float|for|if|implements|import|instanceof|int|interface|long|native|new|package|public|return|short|static|strictfp|super|switch|synchronized|throw|throws|transient|try|void|volative|while)\b`, 1),
	lexer.NewRule("keyword literal", `(false|null|this|true)\b`),
}, lexer.WithExtensions(".java"))

var JavaScript = lexer.NewProfile("javascript", []lexer.Rule{
	lexer.NewRule("keyword", `(as|break|case|catch|class|const|constructor|continue|debugger|default|delete|do|else|enum|export|extends|finally|for|from|function|get|if|import|in|instanceof|new|let|module|of|return|set|super|static|string|switch|throw|try|var|while|with|yield)\b`),
	lexer.NewRule("keyword literal", `(false|null|this|true)\b`),
}, lexer.WithExtensions(".js", ".mjs", ".cjs", ".jsx"))

var Lua = lexer.NewProfile("lua", []lexer.Rule{
	lexer.NewRule("keyword", `(and|break|do|else|elseif|end|false|for|function|if|in|local|not|or|repeat|return|then|true|until|while)\b`),
	lexer.NewRule("keyword literal", `(nil)\b`),
	lexer.NewRule("comment", `--[^\n]*`),
}, lexer.WithExtensions(".lua"))

var Python = lexer.NewProfile("python", []lexer.Rule{
	lexer.NewRule("keyword", `(and|as|assert|break|class|continue|def|del|elif|else|except|finally|for|from|global|if|import|in|is|lambda|nonlocal|not|or|pass|raise|return|try|while|with|yield)\b`),
	lexer.NewRule("keyword literal", `(False|None|self|True)\b`),
	lexer.NewRule("comment", `#[^\n]*`),
}, lexer.WithExtensions(".py", ".pyw"))

var Ruby = lexer.NewProfile("ruby", []lexer.Rule{
	lexer.NewRule("keyword", `(__ENCODING__|__LINE|__FILE__|BEGIN|END|alias|and|begin|break|case|class|def|defined|do|else|elsif|end|ensure|for|if|in|module|next|not|or|redo|rescue|retry|return|super|then|trueundef|unless|until|when|while|yield)\b`),
	lexer.NewRule("keyword literal", `(false|nil|self|true)\b`),
}, lexer.WithExtensions(".rb"))

var Rust = lexer.NewProfile("rust", []lexer.Rule{
	lexer.NewRule("keyword", `(as|async|await|break|consts|continue|crate|dyn|else|enum|extern|fn|for|if|impl|in|let|loop|match|mod|move|mut|pub|ref|return|Self|static|struct|super|trait|type|unsafe|use|where|while)\b`),
	lexer.NewRule("keyword literal", `(false|self|true)\b`),
}, lexer.WithExtensions(".rs"))

var SQL = lexer.NewProfile("sql", []lexer.Rule{
	lexer.NewRule("keyword", `(ADD|ALL|ALTER|AND|ANY|AS|ASC|BACKUP|BETWEEN|CASE|CHECK|COLUMN|CONSTRAINT|CREATE|DATABASE|INDEX|OR|REPLACE|VIEW|TABLE|PROCEDURE|UNIQUE|INDEX|DEFAULT|DELETE|DESC|DISTINCT|DROP|EXEC|EXISTS|FOREIGN|KEY|FROM|FULL|OUTER|JOIN|GROUP|BY|HAVING|IN|INNER|JOIN|INSERT|INTO|SELECT|IS|NULL|NOT|LEFT|LIKE|LIMIT|NOT|OR|ORDER|OUTER|PRIMARY|PROCEDURE|RIGHT|ROWNUM|INTO|TOP|SET|TABLE|TOP|TRUNCATE|UNION|ALL|UPDATE|VALUES|WHERE)\b`),
}, lexer.WithExtensions(".sql"))

var TypeScript = lexer.NewProfile("typescript", []lexer.Rule{
	lexer.NewRule("keyword", `(any|as|boolean|break|case|catch|class|const|constructor|continue|debugger|declare|default|delete|do|else|enum|export|extends|finally|for|from|function|get|if|implements|import|in|instanceof|interface|new|let|module|number|of|private|protected|public|require|return|set|super|static|string|switch|symbol|throw|try|type|typeof|var|void|while|with|yield)\b`),
	lexer.NewRule("keyword literal", `(false|null|this|true)\b`),
}, lexer.WithExtensions(".ts", ".tsx"))
