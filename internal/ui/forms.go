package ui

import (
	"strconv"
	"strings"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

func formInt(values map[string][]string, key string) int {
	n, err := strconv.Atoi(formString(values, key))
	if err != nil {
		return 0
	}
	return n
}

func formInt64(values map[string][]string, key string) (int64, error) {
	return strconv.ParseInt(formString(values, key), 10, 64)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
