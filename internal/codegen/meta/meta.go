package meta

import "github.com/Alia5/keycodegen/internal/codegen/scanner"

// Metadata holds the scanned keycode table and emission settings.
// Shared between the generator orchestrator and the fragment writers.
type Metadata struct {
	Keycodes     *scanner.Result
	Header       string // first line of every fragment, e.g. "// generated with keycodegen"
	Str2CodeFile string // file name of the string-to-code fragment
	Code2StrFile string // file name of the code-to-string fragment
}
