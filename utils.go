package logpuzzle

import (
	"fmt"
	"regexp"
)

// nonSpace matches a single character that isn't whitespace, counting
// vertical tab, the information separators, NEL and Unicode spaces as
// whitespace too.
const nonSpace = `[^\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	rxPuzzlePath   = regexp.MustCompile(`GET (` + nonSpace + `*puzzle` + nonSpace + `*) HTTP`)
	rxHostFragment = regexp.MustCompile(nonSpace + `*(code` + nonSpace + `*)`)
)

const (
	indexFileName = "index.html"
	indexHeader   = "<html>\n<body>\n"
	indexFooter   = "\n</body>\n</html>\n"
)

// imageFileName returns the local name of the i-th downloaded image.
func imageFileName(i int) string {
	return fmt.Sprintf("img%d", i)
}

// imageTag returns the <img> tag that shows the local file name.
func imageTag(name string) string {
	return fmt.Sprintf(`<img src="%s">`, name)
}
