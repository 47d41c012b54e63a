package output

import (
	"encoding/json"
	"fmt"

	"github.com/jiwonz/roblox-install/internal/logging"
)

// JSON is an outputer for consumption by tooling
type JSON struct {
	cfg *Config
}

// NewJSON constructs a new JSON struct
func NewJSON(config *Config) (JSON, error) {
	return JSON{config}, nil
}

func (f *JSON) Print(value interface{}) {
	if v, ok := value.(error); ok {
		value = v.Error()
	}
	b, err := json.Marshal(value)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		f.Error("Could not marshal value to JSON")
		return
	}
	f.cfg.OutWriter.Write(append(b, '\n'))
}

func (f *JSON) Error(value interface{}) {
	if v, ok := value.(error); ok {
		value = v.Error()
	}
	errStruct := struct {
		Error interface{} `json:"error"`
	}{value}
	b, err := json.Marshal(errStruct)
	if err != nil {
		logging.Error("Could not marshal value, error: %v", err)
		b = []byte(fmt.Sprintf(`{"error": %q}`, "Could not marshal value to JSON"))
	}
	f.cfg.ErrWriter.Write(append(b, '\n'))
}

// Notice has no effect for this outputer, notices would render the JSON output
// unparseable
func (f *JSON) Notice(value interface{}) {
	logging.Debug("JSON outputer ignoring notice: %v", value)
}

// Config returns the Config struct for the active instance
func (f *JSON) Config() *Config {
	return f.cfg
}
