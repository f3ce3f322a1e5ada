package config

import (
	"github.com/Alia5/keycodegen/internal/cmd"

	"github.com/alecthomas/kong"
)

// CLI is the root Kong grammar. Values are resolved from config files first,
// then environment, then flags.
type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (json, yaml or toml)" env:"KEYCODEGEN_CONFIG" placeholder:"PATH"`
	Version    kong.VersionFlag `help:"Print version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate str2code/code2str lookup fragments from input-event-codes.h (default)"`
	Scan     cmd.Scan          `cmd:"" help:"Print the parsed key/button code table"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

type Log struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"KEYCODEGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"KEYCODEGEN_LOG_FILE"`
}
