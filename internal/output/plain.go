package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"

	"github.com/jiwonz/roblox-install/internal/logging"
)

var errorColor = color.New(color.FgRed, color.Bold)

// Plain is an outputer for human readable text
type Plain struct {
	cfg *Config
}

// NewPlain constructs a new Plain struct
func NewPlain(config *Config) (Plain, error) {
	return Plain{config}, nil
}

// Print will marshal and print the given value to the output writer
func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
}

// Error will marshal and print the given value to the error writer, it prints it in red
func (f *Plain) Error(value interface{}) {
	v, err := sprint(value)
	if err != nil {
		logging.Errorf("Could not sprint value: %v, error: %v", value, err)
		v = fmt.Sprintf("%v", value)
	}
	f.writeColored(f.cfg.ErrWriter, errorColor, v)
}

// Notice will marshal and print the given value to the error writer, it
// writes to the error writer so that notices don't end up in redirected output
func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
}

// Config returns the Config struct for the active instance
func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	v, err := sprint(value)
	if err != nil {
		logging.Errorf("Could not sprint value: %v, error: %v", value, err)
		f.writeColored(f.cfg.ErrWriter, errorColor, fmt.Sprintf("Could not print value, error: %v", err))
		return
	}
	fmt.Fprintln(writer, v)
}

func (f *Plain) writeColored(writer io.Writer, c *color.Color, value string) {
	if !f.cfg.Colored {
		fmt.Fprintln(writer, value)
		return
	}
	c.Fprintln(writer, value)
}

func sprint(value interface{}) (string, error) {
	// errors know how to represent themselves, don't reflect into them
	if v, ok := value.(error); ok {
		return v.Error(), nil
	}

	var result string
	var err error

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct:
		var r string
		r, err = sprintStruct(value)
		result += r
	case reflect.Slice:
		var r string
		r, err = sprintSlice(value)
		result += r
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result += fmt.Sprintf("%d", value)
	case reflect.Float32, reflect.Float64:
		result += fmt.Sprintf("%.2f", valueRfl.Float())
	case reflect.Bool:
		result += fmt.Sprintf("%t", valueRfl.Bool())
	case reflect.String:
		result += value.(string)
	default:
		err = fmt.Errorf("unknown type: %s", valueRfl.Type().String())
	}

	return result, err
}

func sprintStruct(value interface{}) (string, error) {
	structMeta, err := parseStructMeta(value)
	if err != nil {
		return "", err
	}

	result := []string{}
	for i, value := range structMeta.values {
		stringValue, err := sprint(value)
		if err != nil {
			return "", err
		}

		result = append(result, fmt.Sprintf("%s: %s", structMeta.serializedFields[i], stringValue))
	}
	return strings.Join(result, "\n"), nil
}

func sprintSlice(value interface{}) (string, error) {
	slice, err := parseSlice(value)
	if err != nil {
		return "", err
	}

	result := []string{}
	for _, v := range slice {
		stringValue, err := sprint(v)
		if err != nil {
			return "", err
		}

		result = append(result, stringValue)
	}

	return "\n - " + strings.Join(result, "\n - "), nil
}
