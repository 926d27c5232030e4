package processor

import (
	"github.com/wgomg/synopsis/internal/utils"
)

// ExceedsLimit reports whether a document of wordCount words is over
// maxWords. A maxWords of 0 disables the check.
func ExceedsLimit(wordCount int, maxWords int) bool {
	return maxWords > 0 && wordCount > maxWords
}

func InputTooLong(text string, maxWords int) bool {
	return ExceedsLimit(utils.CountWords(text), maxWords)
}
