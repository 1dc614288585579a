package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type envTypes interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv reads an environment variable and converts it to T, falling back to
// defaultValue when the variable is unset or empty.
func GetEnv[T envTypes](name string, defaultValue T) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return defaultValue
	}

	converted, err := convertEnv[T](name, value)
	if err != nil {
		panic(err)
	}
	return converted
}

// GetRequiredEnv reads an environment variable and converts it to T, panicking
// when the variable is unset: missing required configuration is a deployment
// error, not a runtime condition.
func GetRequiredEnv[T envTypes](name string) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		panic(fmt.Sprintf("environment variable %s is required", name))
	}

	converted, err := convertEnv[T](name, value)
	if err != nil {
		panic(err)
	}
	return converted
}

func convertEnv[T envTypes](name, value string) (T, error) {
	var out T

	switch ptr := any(&out).(type) {
	case *string:
		*ptr = value
	case *int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not an integer", name, value)
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not a boolean", name, value)
		}
		*ptr = parsed
	case *float64:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not a float", name, value)
		}
		*ptr = parsed
	case *time.Duration:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: %q is not a duration", name, value)
		}
		*ptr = parsed
	}

	return out, nil
}
