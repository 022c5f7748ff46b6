package normalize

import (
	"regexp"
	"strconv"
)

var countRe = regexp.MustCompile(`\d+`)

// ParseCount pulls the integer out of labels like "Відгуки (12)".
// Labels without digits count as zero.
func ParseCount(label string) int {
	digits := countRe.FindString(label)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
