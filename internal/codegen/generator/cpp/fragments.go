package cpp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Alia5/keycodegen/internal/codegen/meta"
	"github.com/Alia5/keycodegen/internal/codegen/scanner"
)

// str2codeTmpl is meant to be #included inside a function taking
// `std::string_view str`, followed by a fallback return.
const str2codeTmpl = `{{with .Header}}{{.}}
{{end}}{{range .Entries}}if(str == {{cquote .Name}}) return {{.Code}};
{{end}}`

// code2strTmpl is meant to be #included inside `switch(code) { ... }`.
const code2strTmpl = `{{with .Header}}{{.}}
{{end}}{{range .Entries}}case {{.Code}}: return {{cquote .Name}};
{{end}}`

var (
	str2code = template.Must(template.New("str2code").Funcs(tplFuncs()).Parse(str2codeTmpl))
	code2str = template.Must(template.New("code2str").Funcs(tplFuncs()).Parse(code2strTmpl))
)

type fragmentData struct {
	Header  string
	Entries []scanner.Entry
}

func newFragmentData(header string, table scanner.Table) fragmentData {
	return fragmentData{
		Header:  strings.TrimRight(header, "\r\n"),
		Entries: table.Entries(),
	}
}

// WriteStr2Code writes the string-to-code fragment for table to w.
func WriteStr2Code(w io.Writer, header string, table scanner.Table) error {
	return str2code.Execute(w, newFragmentData(header, table))
}

// WriteCode2Str writes the code-to-string fragment for table to w.
func WriteCode2Str(w io.Writer, header string, table scanner.Table) error {
	return code2str.Execute(w, newFragmentData(header, table))
}

type fragment struct {
	path   string
	render func(io.Writer) error
	buf    bytes.Buffer
	tmp    string
}

// stage writes the rendered fragment to a temporary file next to its target.
func (f *fragment) stage() error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	f.tmp = tmp.Name()
	if _, err := tmp.Write(f.buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	return tmp.Close()
}

func removeStaged(fragments []*fragment) {
	for _, f := range fragments {
		if f.tmp != "" {
			_ = os.Remove(f.tmp)
		}
	}
}

// Generate writes both lookup fragments into outputDir, truncating existing files:
// - <Str2CodeFile>: if(str == "<name>") return <code>;
// - <Code2StrFile>: case <code>: return "<name>";
// Both fragments are rendered and staged before either target is replaced.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	if md.Keycodes == nil {
		return errors.New("no keycodes scanned")
	}
	table := md.Keycodes.Table

	fragments := []*fragment{
		{
			path:   filepath.Join(outputDir, md.Str2CodeFile),
			render: func(w io.Writer) error { return WriteStr2Code(w, md.Header, table) },
		},
		{
			path:   filepath.Join(outputDir, md.Code2StrFile),
			render: func(w io.Writer) error { return WriteCode2Str(w, md.Header, table) },
		},
	}

	for _, f := range fragments {
		if err := f.render(&f.buf); err != nil {
			return fmt.Errorf("render %s: %w", filepath.Base(f.path), err)
		}
	}

	defer removeStaged(fragments)
	for _, f := range fragments {
		if err := f.stage(); err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(f.path), err)
		}
	}

	for _, f := range fragments {
		if err := os.Rename(f.tmp, f.path); err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(f.path), err)
		}
		f.tmp = ""
		logger.Debug("Generated fragment", "path", f.path, "bytes", f.buf.Len())
	}

	logger.Info("Generated keycode fragments", "dir", outputDir, "entries", len(table))
	return nil
}
