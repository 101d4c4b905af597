// Package configuration reads the application settings from dotenv-style
// configuration files and the environment.
package configuration

import (
	"os"
	"strings"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type envProvider interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv is an implementation wrapping the process environment.
type OSEnv struct{}

// LookupEnv wraps around [os.LookupEnv].
func (*OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
	EnvHandler     envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider, envHandler envProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
		EnvHandler:     envHandler,
	}
}

// ReadGeneric reads generic configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// MapKeyToString returns the value for key or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}
