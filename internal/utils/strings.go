package utils

import "strings"

var controlReplacer = strings.NewReplacer(
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\v", `\v`,
	"\f", `\f`,
	"\a", `\a`,
)

// EscapeControl makes control characters in serial protocol frames visible for debug logging.
func EscapeControl(s []byte) string {
	return controlReplacer.Replace(string(s))
}
