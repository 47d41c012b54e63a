package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	C "github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
)

// Instance holds our main config logic
type Instance struct {
	appDataDir string
	mu         sync.Mutex
	data       map[string]interface{}
}

func New() (*Instance, error) {
	return NewCustom("")
}

// NewCustom is intended only to be used from tests or internally to this package
func NewCustom(localPath string) (*Instance, error) {
	i := &Instance{data: map[string]interface{}{}}

	var err error
	if localPath != "" {
		i.appDataDir, err = AppDataPathWithParent(localPath)
	} else {
		i.appDataDir, err = AppDataPath()
	}
	if err != nil {
		return nil, errs.Wrap(err, "Could not detect appdata dir")
	}

	// Ensure appdata dir exists, the yaml write sure doesn't do it for us
	if _, err := os.Stat(i.appDataDir); os.IsNotExist(err) {
		err = os.MkdirAll(i.appDataDir, os.ModePerm)
		if err != nil {
			return nil, errs.Wrap(err, "Could not create config dir")
		}
	}

	if err := i.read(); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Instance) read() error {
	path := i.Filepath()
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errs.Wrap(err, "Could not read config file at %s", path)
	}

	if err := yaml.Unmarshal(b, &i.data); err != nil {
		return errs.Wrap(err, "Could not unmarshal config file at %s", path)
	}

	return nil
}

// save writes the config data back out. Callers must hold the mutex.
func (i *Instance) save() error {
	b, err := yaml.Marshal(i.data)
	if err != nil {
		return errs.Wrap(err, "Could not marshal config data")
	}

	path := i.Filepath()
	if err := ioutil.WriteFile(path, b, 0664); err != nil {
		return errs.Wrap(err, "Could not write config file at %s", path)
	}

	return nil
}

// Set sets a value at the given key and persists it immediately
func (i *Instance) Set(key string, value interface{}) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.data[key] = value
	return i.save()
}

// Unset removes the given key and persists the change immediately
func (i *Instance) Unset(key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.data[key]; !ok {
		return nil
	}

	delete(i.data, key)
	return i.save()
}

func (i *Instance) IsSet(key string) bool {
	return i.Get(key) != nil
}

func (i *Instance) Get(key string) interface{} {
	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.data[key]; ok {
		return v
	}
	return nil
}

// GetString retrieves a string for a given key
func (i *Instance) GetString(key string) string {
	return cast.ToString(i.Get(key))
}

// GetInt retrieves an int for a given key
func (i *Instance) GetInt(key string) int {
	return cast.ToInt(i.Get(key))
}

// GetBool retrieves a boolean value for a given key
func (i *Instance) GetBool(key string) bool {
	return cast.ToBool(i.Get(key))
}

// AllKeys returns all of the current config keys
func (i *Instance) AllKeys() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	var keys []string
	for key := range i.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ConfigPath returns the path at which our configuration is stored
func (i *Instance) ConfigPath() string {
	return i.appDataDir
}

// Filepath returns the path of the config file itself
func (i *Instance) Filepath() string {
	return filepath.Join(i.appDataDir, C.InternalConfigFileName)
}
