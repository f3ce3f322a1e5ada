package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/keycodegen/internal/codegen/generator/cpp"
	"github.com/Alia5/keycodegen/internal/codegen/meta"
	"github.com/Alia5/keycodegen/internal/codegen/scanner"
	"github.com/Alia5/keycodegen/internal/log"
)

const (
	DefaultHeader       = "// generated with keycodegen"
	DefaultStr2CodeFile = "str2code.txt"
	DefaultCode2StrFile = "code2str.txt"
)

type Generator struct {
	outputDir    string
	logger       *slog.Logger
	header       string
	str2codeFile string
	code2strFile string
}

type Option func(*Generator)

// WithHeader replaces the comment line written at the top of both fragments.
// An empty header omits the line.
func WithHeader(header string) Option {
	return func(g *Generator) { g.header = header }
}

// WithFileNames overrides the fragment file names. Empty names keep the defaults.
func WithFileNames(str2code, code2str string) Option {
	return func(g *Generator) {
		if str2code != "" {
			g.str2codeFile = str2code
		}
		if code2str != "" {
			g.code2strFile = code2str
		}
	}
}

func New(outputDir string, logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		outputDir:    outputDir,
		logger:       logger,
		header:       DefaultHeader,
		str2codeFile: DefaultStr2CodeFile,
		code2strFile: DefaultCode2StrFile,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Scan reads header definitions from r until EOF.
func (g *Generator) Scan(r io.Reader) (*meta.Metadata, error) {
	g.logger.Debug("Scanning header for key and button codes")

	res, err := scanner.ScanKeycodes(r)
	if err != nil {
		return nil, fmt.Errorf("failed to scan keycodes: %w", err)
	}

	g.logger.Info("Scanned header", "lines", res.Lines, "codes", len(res.Table))
	if res.Rejected > 0 || res.Replaced > 0 {
		g.logger.Debug("Skipped or replaced definitions", "rejected", res.Rejected, "replaced", res.Replaced)
	}
	if ctx := context.Background(); g.logger.Enabled(ctx, log.LevelTrace) {
		for _, e := range res.Table.Entries() {
			g.logger.Log(ctx, log.LevelTrace, "Keycode", "code", e.Code, "name", e.Name)
		}
	}

	return &meta.Metadata{
		Keycodes:     res,
		Header:       g.header,
		Str2CodeFile: g.str2codeFile,
		Code2StrFile: g.code2strFile,
	}, nil
}

// Generate scans r and writes both lookup fragments into the output directory.
func (g *Generator) Generate(r io.Reader) error {
	md, err := g.Scan(r)
	if err != nil {
		return err
	}

	if g.outputDir != "" {
		if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := cpp.Generate(g.logger, g.outputDir, md); err != nil {
		return fmt.Errorf("generate keycode fragments: %w", err)
	}
	return nil
}
