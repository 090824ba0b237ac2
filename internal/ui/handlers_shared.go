package ui

import "strconv"

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func dashIfEmpty(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
