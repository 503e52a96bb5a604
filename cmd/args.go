package cmd

import (
	"strconv"
	"strings"
)

// escapeNegativeArgs inserts "--" before the first negative number so that
// "micros factorial -3" reaches the exercise instead of failing as an unknown
// shorthand flag. Args are returned unchanged when they already contain "--"
// or when a flag follows the number, since flags after "--" are not parsed.
func escapeNegativeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isNegativeNumber(arg) {
			continue
		}

		for _, rest := range args[i+1:] {
			if strings.HasPrefix(rest, "-") && !isNegativeNumber(rest) {
				return args
			}
		}

		escaped := make([]string, 0, len(args)+1)
		escaped = append(escaped, args[:i]...)
		escaped = append(escaped, "--")
		return append(escaped, args[i:]...)
	}

	return args
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
