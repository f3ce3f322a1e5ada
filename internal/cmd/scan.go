package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/keycodegen/internal/codegen/generator"
	"github.com/Alia5/keycodegen/internal/codegen/scanner"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Scan prints the code table a generate run would emit, without writing fragments.
type Scan struct {
	Input  string `help:"Header to read key/button definitions from; '-' reads stdin" default:"-" env:"KEYCODEGEN_INPUT"`
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"KEYCODEGEN_SCAN_FORMAT"`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

type scanReport struct {
	Lines    int             `json:"lines" yaml:"lines" toml:"lines"`
	Codes    int             `json:"codes" yaml:"codes" toml:"codes"`
	Rejected int             `json:"rejected" yaml:"rejected" toml:"rejected"`
	Replaced int             `json:"replaced" yaml:"replaced" toml:"replaced"`
	Entries  []scanner.Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Run is called by Kong when the scan command is executed.
func (s *Scan) Run(logger *slog.Logger) error {
	in, err := openInput(s.Input, s.Stdin, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	md, err := generator.New("", logger).Scan(in)
	if err != nil {
		return err
	}
	res := md.Keycodes

	report := scanReport{
		Lines:    res.Lines,
		Codes:    len(res.Table),
		Rejected: res.Rejected,
		Replaced: res.Replaced,
		Entries:  res.Table.Entries(),
	}

	out := s.Stdout
	if out == nil {
		out = os.Stdout
	}
	return writeReport(out, s.Format, report)
}

func writeReport(w io.Writer, format string, report scanReport) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(report)
	case "toml":
		data, err = toml.Marshal(report)
	case "text", "":
		return writeTextReport(w, report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s report: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

func writeTextReport(w io.Writer, report scanReport) error {
	if _, err := fmt.Fprintf(w, "Lines: %d\nCodes: %d\nRejected: %d\nReplaced: %d\n",
		report.Lines, report.Codes, report.Rejected, report.Replaced); err != nil {
		return err
	}
	if len(report.Entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(w, "  %d\t%s\n", e.Code, e.Name); err != nil {
			return err
		}
	}
	return nil
}
