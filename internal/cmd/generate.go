package cmd

import (
	"io"
	"log/slog"

	"github.com/Alia5/keycodegen/internal/codegen/generator"
)

type Generate struct {
	Input    string `help:"Header to read key/button definitions from; '-' reads stdin" default:"-" env:"KEYCODEGEN_INPUT"`
	Output   string `help:"Directory receiving the generated fragments" default:"." env:"KEYCODEGEN_OUTPUT"`
	Str2Code string `name:"str2code" help:"File name of the string-to-code fragment" default:"str2code.txt" env:"KEYCODEGEN_STR2CODE"`
	Code2Str string `name:"code2str" help:"File name of the code-to-string fragment" default:"code2str.txt" env:"KEYCODEGEN_CODE2STR"`
	Header   string `help:"Comment line written at the top of both fragments" default:"// generated with keycodegen" env:"KEYCODEGEN_HEADER"`

	Stdin io.Reader `kong:"-"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting keycode generation", "input", g.Input, "output", g.Output)

	in, err := openInput(g.Input, g.Stdin, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	gen := generator.New(g.Output, logger,
		generator.WithHeader(g.Header),
		generator.WithFileNames(g.Str2Code, g.Code2Str),
	)
	return gen.Generate(in)
}
