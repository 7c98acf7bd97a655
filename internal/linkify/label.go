package linkify

// LabelPolicy decides the display text for a detected link, independent of
// its target. Policies are resolved once per match; a nil LabelPolicy keeps
// the matched text as the display text.
type LabelPolicy interface {
	Label(url string) string
}

type fixedLabel string

func (f fixedLabel) Label(string) string { return string(f) }

// FixedLabel displays the same text for every link.
func FixedLabel(text string) LabelPolicy { return fixedLabel(text) }

// LabelFunc derives the display text from the link target. The result is
// used verbatim, empty string included.
type LabelFunc func(url string) string

func (fn LabelFunc) Label(url string) string { return fn(url) }
