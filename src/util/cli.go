package util

import (
	"fmt"
)

const USAGE = "Usage: %s [FILE]"

// If there is exactly one command line argument, use it as the path of a file
// whose contents seed the editor buffer
func ParseCommandLineArgs(args []string) (string, error) {
	if len(args) < 2 {
		return "", nil
	} else if len(args) == 2 {
		return args[1], nil
	}
	return "", fmt.Errorf(USAGE, args[0])
}
