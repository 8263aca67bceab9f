package encode

import (
	"github.com/bokysan/b64stream/internal/commands"
	"github.com/bokysan/b64stream/internal/logging"
	"github.com/bokysan/b64stream/internal/session"
	"github.com/bokysan/b64stream/internal/util/buffers"
	"github.com/bokysan/b64stream/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes a file, stdin or the literal arguments into Base64
type Command struct {
	Input     string `short:"i" long:"input"      env:"B64STREAM_INPUT"      description:"File to encode, '-' for stdin"          default:"-"  yaml:"input"`
	Output    string `short:"o" long:"output"     env:"B64STREAM_OUTPUT"     description:"File to write to, '-' for stdout"       default:"-"  yaml:"output"`
	Columns   int    `short:"w" long:"wrap"       env:"B64STREAM_WRAP"       description:"Insert the separator every N encoded characters, 0 to disable" default:"76" yaml:"wrap"`
	Separator string `short:"S" long:"separator"  env:"B64STREAM_SEPARATOR"  description:"Line separator, escape sequences such as \\r\\n are allowed" default:"\\n" yaml:"separator"`
	ChunkSize int    `          long:"chunk-size" env:"B64STREAM_CHUNK_SIZE" description:"Number of bytes read from the input at once"  default:"768" yaml:"chunk-size"`

	Literals struct {
		Data []string `positional-arg-name:"data" description:"Encode the given strings instead of the input, one per line"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{
		Input:     "-",
		Output:    "-",
		Columns:   76,
		Separator: `\n`,
		ChunkSize: buffers.EncodeChunkSize,
	}
}

// separator returns the separator to insert into the output, nil if wrapping is disabled
func (c *Command) separator() (*enc.Separator, error) {
	if c.Columns < 0 {
		return nil, errors.Wrapf(enc.ErrInvalidArgument, "invalid number of columns: %d", c.Columns)
	}
	sep, err := commands.Unescape(c.Separator)
	if err != nil {
		return nil, err
	}
	if c.Columns == 0 || sep == "" {
		return nil, nil
	}
	return enc.NewSeparator(sep, c.Columns), nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	sep, err := c.separator()
	if err != nil {
		return err
	}

	if len(c.Literals.Data) > 0 {
		encoder := &enc.Base64Encoder{Separator: sep}
		log.Debugf("Encoding %d arguments with %v", len(c.Literals.Data), encoder)
		return commands.ConvertLiterals(c.Output, c.Literals.Data, "\n", encoder.Encode)
	}

	ctx, done := commands.Interruptible()
	defer done()

	stats, err := session.ConvertFiles(ctx, session.Encode, c.Input, c.Output,
		session.WithSeparator(sep),
		session.WithChunkSize(c.ChunkSize),
	)
	if err != nil {
		return err
	}
	commands.ReportStats(session.Encode, stats)
	return nil
}
