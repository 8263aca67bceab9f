package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type generalOptions struct {
	Stats bool   `long:"stats" description:"Log statistics"`
	File  string `long:"file"`
}

type encodeOptions struct {
	Columns   int    `long:"columns"   yaml:"columns"`
	Separator string `long:"separator" yaml:"separator"`
}

func (e *encodeOptions) Execute(args []string) error {
	return nil
}

func newParser(t *testing.T) (*flags.Parser, *generalOptions, *encodeOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)
	general := &generalOptions{}
	encode := &encodeOptions{}

	_, err := parser.AddGroup("General", "General options", general)
	require.NoErrorf(t, err, "Could not add general group")
	_, err = parser.AddCommand("encode", "Encode", "Encode data", encode)
	require.NoErrorf(t, err, "Could not add encode command")

	return parser, general, encode
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser, _, _ := newParser(t)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, general, _ := newParser(t)
	yamlParser := NewYamlParser(parser)

	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, general.Stats, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", general.File, "Invalid reading of string value")
}

func Test_GeneralCommandParse(t *testing.T) {
	file := "testdata/general.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)
	data := &generalOptions{}
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general command")

	err = NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.True(t, data.Stats)
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	parser, general, _ := newParser(t)
	yamlParser := NewYamlParser(parser)

	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.True(t, general.Stats)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	yamlParser := NewYamlParser(parser)

	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
	require.Contains(t, err.Error(), "transcode")
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}

func Test_MultipleDocuments(t *testing.T) {
	file := "testdata/commands.yml"

	parser, general, encode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.True(t, general.Stats)
	require.Equal(t, 64, encode.Columns, "Later documents override earlier ones")
}

func Test_ParseReader(t *testing.T) {
	parser, _, encode := newParser(t)
	err := NewYamlParser(parser).Parse(strings.NewReader("encode:\n  columns: 4\n"))
	require.NoError(t, err)
	require.Equal(t, 4, encode.Columns)

	err = NewYamlParser(parser).Parse(strings.NewReader("encode:\n  columns: many\n"))
	require.Error(t, err)
}
