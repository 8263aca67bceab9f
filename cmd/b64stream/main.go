package main

import (
	"fmt"
	"github.com/bokysan/b64stream/internal/args"
	"github.com/bokysan/b64stream/internal/commands/decode"
	"github.com/bokysan/b64stream/internal/commands/encode"
	"github.com/bokysan/b64stream/internal/commands/version"
	b64Flags "github.com/bokysan/b64stream/internal/flags"
	"github.com/bokysan/b64stream/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// B64Stream is the main executable
type B64Stream struct {
	parser *flags.Parser
}

// NewB64Stream will create a new instance of B64Stream and initialize the parser
func NewB64Stream() *B64Stream {
	executablePath := path.Base(os.Args[0])

	b := &B64Stream{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	b.addCommand("encode", "Encode to Base64",
		"Encode a file, stdin or the given arguments to Base64, wrapping the lines every --wrap characters",
		encode.NewCommand())
	b.addCommand("decode", "Decode from Base64",
		"Decode Base64 text from a file, stdin or the given arguments. Line breaks and other characters outside of the alphabet are skipped.",
		decode.NewCommand())

	return b
}

// setupGeneral will configure general options
func (b *B64Stream) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (b *B64Stream) addCommand(name, short, long string, data interface{}) {
	_, err := b.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

// main starts b64stream and reads the configuration file
func main() {
	b := NewB64Stream()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return b64Flags.NewYamlParser(b.parser).ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
