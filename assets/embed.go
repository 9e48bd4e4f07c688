// assets/embed.go
//
// Bundled resources shipped inside the binary.
// The default dictionary stands in for a word file supplied by the host
// environment, so the game still starts when WORDS_FILE is not configured.
package assets

import (
	"embed"
	"io"
)

// WordListName is the embedded dictionary file name.
const WordListName = "word_list.txt"

//go:embed word_list.txt
var FS embed.FS

// WordList opens the embedded dictionary. Callers must close it.
func WordList() (io.ReadCloser, error) {
	return FS.Open(WordListName)
}
