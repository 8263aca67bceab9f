package decode

import (
	"github.com/bokysan/b64stream/internal/commands"
	"github.com/bokysan/b64stream/internal/logging"
	"github.com/bokysan/b64stream/internal/session"
	"github.com/bokysan/b64stream/internal/util/buffers"
	"github.com/bokysan/b64stream/internal/util/enc"
	log "github.com/sirupsen/logrus"
)

// Command decodes Base64 text from a file, stdin or the literal arguments. Characters outside of
// the Base64 alphabet, e.g. line breaks, are skipped.
type Command struct {
	Input     string `short:"i" long:"input"      env:"B64STREAM_INPUT"      description:"File to decode, '-' for stdin"    default:"-"   yaml:"input"`
	Output    string `short:"o" long:"output"     env:"B64STREAM_OUTPUT"     description:"File to write to, '-' for stdout" default:"-"   yaml:"output"`
	ChunkSize int    `          long:"chunk-size" env:"B64STREAM_CHUNK_SIZE" description:"Number of characters read from the input at once" default:"512" yaml:"chunk-size"`

	Literals struct {
		Data []string `positional-arg-name:"text" description:"Decode the given strings instead of the input"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{
		Input:     "-",
		Output:    "-",
		ChunkSize: buffers.DecodeChunkSize,
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if len(c.Literals.Data) > 0 {
		decoder := &enc.Base64Encoder{}
		log.Debugf("Decoding %d arguments with %v", len(c.Literals.Data), decoder)
		return commands.ConvertLiterals(c.Output, c.Literals.Data, "", decoder.Decode)
	}

	ctx, done := commands.Interruptible()
	defer done()

	stats, err := session.ConvertFiles(ctx, session.Decode, c.Input, c.Output, session.WithChunkSize(c.ChunkSize))
	if err != nil {
		return err
	}
	commands.ReportStats(session.Decode, stats)
	return nil
}
