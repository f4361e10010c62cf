// Package spell suggests corrections for mistyped editor commands.
package spell

import (
	"slices"
	"strings"

	"github.com/sajari/fuzzy"
)

// Vocabulary is the set of commands understood by the command line.
var Vocabulary = []string{"w", "q", "q!", "wq"}

// Commands provides "did you mean" suggestions using a fuzzy model trained
// on the command vocabulary.
type Commands struct {
	model *fuzzy.Model
	words []string
}

func NewCommands(words []string) *Commands {
	model := fuzzy.NewModel()
	model.SetDepth(2)
	// Each command is trained once, so it must count as a word at 1.
	model.SetThreshold(1)
	for _, w := range words {
		model.TrainWord(w)
	}
	return &Commands{model: model, words: words}
}

// Known reports whether input is a complete command.
func (c *Commands) Known(input string) bool {
	return slices.Contains(c.words, input)
}

// Suggest returns the closest known command, or "" when input is already
// known or nothing is close enough.
func (c *Commands) Suggest(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || c.Known(input) {
		return ""
	}
	// Only the command word is corrected; arguments are dropped.
	if word, _, ok := strings.Cut(input, " "); ok {
		input = word
	}
	suggestion := c.model.SpellCheck(input)
	if suggestion == input || !c.Known(suggestion) {
		return ""
	}
	return suggestion
}
