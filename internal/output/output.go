package output

import (
	"io"

	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/logging"
)

type Format string

// FormatName constants are tokens representing supported output formats.
const (
	PlainFormatName Format = "plain" // human readable
	JSONFormatName  Format = "json"  // plain json
)

// Outputer is the initialized formatter
type Outputer interface {
	Print(value interface{})
	Error(value interface{})
	Notice(value interface{})
	Config() *Config
}

// New constructs a new Outputer according to the given format name
func New(formatName string, config *Config) (Outputer, error) {
	logging.Debug("Requested outputer for %s", formatName)

	format := Format(formatName)
	switch format {
	case "", PlainFormatName:
		logging.Debug("Using Plain outputer")
		plain, err := NewPlain(config)
		return &Mediator{&plain, PlainFormatName}, err
	case JSONFormatName:
		logging.Debug("Using JSON outputer")
		json, err := NewJSON(config)
		return &Mediator{&json, JSONFormatName}, err
	}

	return nil, errs.New("Unrecognized format: %s", formatName)
}

// Formats returns the names of all supported output formats
func Formats() []string {
	return []string{string(PlainFormatName), string(JSONFormatName)}
}

// Config is the thing we pass to Outputer constructors
type Config struct {
	OutWriter io.Writer
	ErrWriter io.Writer
	Colored   bool
}
