package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or flags.IniError.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Tell the decoder where the file is, so that other files can be referenced relative to it
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another, using the provided decode options. One input
// may hold several documents separated by triple dashes (`---`); later documents override
// earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// find returns the group the top level key belongs to: either the group of a command with that
// name (e.g. "encode") or an option group with that short description (e.g. "general").
func (y *YamlParser) find(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}

	var found *flags.Group
	var walk func(groups []*flags.Group)
	walk = func(groups []*flags.Group) {
		for _, g := range groups {
			if found != nil {
				return
			}
			if strings.EqualFold(g.ShortDescription, name) {
				found = g
				return
			}
			walk(g.Groups())
		}
	}
	walk(y.parser.Groups())
	return found
}

// parseDocument matches every top level key of the document to a command or a group and
// decodes the value into the structure behind it.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.find(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		// The flags library does not give access to the structure behind a group, so the private
		// field is read through reflection.
		dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		data := dataField.Elem()
		if !data.IsValid() || data.Kind() != reflect.Ptr {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrInvalidTag,
				Message: fmt.Sprintf("'%s' has no options to set", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data.Interface()); err != nil {
			return errors.Wrapf(err, "Could not read '%s'", name)
		}
		log.Tracef("[Config] Read '%s' from configuration file", name)
	}
	return nil
}
