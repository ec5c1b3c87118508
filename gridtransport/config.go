package gridtransport

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is a map of case-insensitive keyword to arbitrary data, used to pass
// optional settings into operations via "key=value" style configuration.
type Config map[string]interface{}

func NewConfig() Config {
	return Config{}
}

// Set places a key/value pair into the configuration, overwriting any previous
// value for that key.
func (c Config) Set(key string, value interface{}) {
	c[strings.ToLower(key)] = value
}

// GetString returns a string value for the given key and whether the key was found.
func (c Config) GetString(key string) (s string, found bool, err error) {
	if c == nil {
		return
	}
	var param interface{}
	if param, found = c[strings.ToLower(key)]; found {
		var ok bool
		s, ok = param.(string)
		if !ok {
			err = fmt.Errorf("expected string for %q setting, got %v", key, param)
		}
		return
	}
	return
}

// GetInt returns an int value for the given key and whether the key was found.
// String values are parsed.
func (c Config) GetInt(key string) (i int, found bool, err error) {
	var s string
	s, found, err = c.GetString(key)
	if err != nil || !found {
		return
	}
	i, err = strconv.Atoi(s)
	return
}

// GetBool returns a bool value for the given key and whether the key was found.
// Recognizes "true", "false", "0", and "1".
func (c Config) GetBool(key string) (value, found bool, err error) {
	var s string
	s, found, err = c.GetString(key)
	if err != nil || !found {
		return
	}
	switch strings.ToLower(s) {
	case "true", "1":
		value = true
	case "false", "0":
		value = false
	default:
		err = fmt.Errorf("expected boolean for %q setting, got %q", key, s)
	}
	return
}
