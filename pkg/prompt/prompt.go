// Package prompt implements the interactive pickers used when a command is
// invoked without enough arguments.
package prompt

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/moodcal/pkg/editor"
	"tableflip.dev/moodcal/pkg/emotion"
)

// Emotion asks the user to pick one emotion from the palette and returns
// its id.
func Emotion() (string, error) {
	kinds := emotion.Kinds()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜ {{ .Glyph }} {{ .Label | bold }}",
		Inactive: "  {{ .Glyph }} {{ .Label }}",
		Selected: "{{ .Glyph }} {{ .Label | bold }}",
	}

	searcher := func(input string, index int) bool {
		return strings.Contains(kinds[index].Label, strings.ToLower(strings.TrimSpace(input)))
	}

	p := promptui.Select{
		Label:     "How was the day",
		Items:     kinds,
		Templates: templates,
		Size:      len(kinds),
		Searcher:  searcher,
	}
	i, _, err := p.Run()
	if err != nil {
		return "", err
	}
	return kinds[i].ID, nil
}

// Memo asks for the optional one-line comment. Empty input is fine.
func Memo() (string, error) {
	p := promptui.Prompt{
		Label: "Memo",
		Validate: func(s string) error {
			if len([]rune(s)) > editor.MaxCommentLen {
				return fmt.Errorf("memo is limited to %d characters", editor.MaxCommentLen)
			}
			return nil
		},
	}
	return p.Run()
}

// Activity asks for the optional activity tag. Returns 0 when none is
// picked.
func Activity() (int, error) {
	type option struct {
		ID    int
		Label string
	}
	options := []option{{ID: 0, Label: "none"}}
	for _, a := range emotion.Activities() {
		options = append(options, option{ID: a.ID, Label: a.Label})
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜ {{ .Label | bold }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | bold }}",
	}

	p := promptui.Select{
		Label:     "Any activity",
		Items:     options,
		Templates: templates,
		Size:      len(options),
	}
	i, _, err := p.Run()
	if err != nil {
		return 0, err
	}
	return options[i].ID, nil
}
