package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type EnvValue interface {
	~string | ~int | ~bool
}

// GetEnv reads an environment variable, falling back on the default value
// when it is absent or empty.
func GetEnv[V EnvValue](name string, defaultValue V) V {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	return parseEnv(name, raw, defaultValue)
}

// GetRequiredEnv reads an environment variable and exits when it is absent.
func GetRequiredEnv[V EnvValue](name string) V {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	var zero V
	return parseEnv(name, raw, zero)
}

func parseEnv[V EnvValue](name, raw string, as V) V {
	var parsed any
	switch any(as).(type) {
	case string:
		parsed = raw
	case int:
		intValue, err := strconv.Atoi(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: %q is not an integer", name, raw))
		}
		parsed = intValue
	case bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: %q is not a boolean", name, raw))
		}
		parsed = boolValue
	}
	return parsed.(V)
}
