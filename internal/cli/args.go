package cli

import "strings"

// angleShorthands are the rotation flags that look like signed numbers.
// pflag cannot declare them, so they are rewritten before parsing.
var angleShorthands = map[string]string{
	"+45":  "45",
	"-45":  "-45",
	"+90":  "90",
	"-90":  "-90",
	"+180": "180",
	"-180": "180",
}

// NormalizeArgs rewrites "+90", "-45" and friends into "--rotate=N".
// The value after a bare "--rotate" and everything after "--" are left
// alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "--rotate" && i+1 < len(args) {
			out = append(out, "--rotate="+strings.TrimPrefix(args[i+1], "+"))
			i++
			continue
		}
		if deg, ok := angleShorthands[a]; ok {
			out = append(out, "--rotate="+deg)
			continue
		}
		out = append(out, a)
	}
	return out
}
