package renderer

import (
	"io"
	"strings"
)

// ConditionalBlock renders block aside and copies it to w only if block
// reports that it wrote something worth showing.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	var aside strings.Builder
	if block(&aside) {
		io.WriteString(w, aside.String())
	}
}
