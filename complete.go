package lineterm

// Completer supplies tab-completion candidates for the line currently
// being edited. Sessions are not required to configure one: WithCompleter
// is optional and a Session has no completer by default. A Session stores
// the configured Completer, but no key binding calls it; tab and the
// function keys are inert.
type Completer interface {
	// ListCompletions returns every candidate completion for the text to
	// the left of the cursor.
	ListCompletions(line string, cursor int) []string

	// AutoComplete returns the single best completion for the text to
	// the left of the cursor, or "" if none applies.
	AutoComplete(line string, cursor int) string
}

// NoopCompleter implements Completer with no candidates, for embedding
// in a type that only wants to override one of the two methods.
type NoopCompleter struct{}

func (NoopCompleter) ListCompletions(line string, cursor int) []string { return nil }
func (NoopCompleter) AutoComplete(line string, cursor int) string      { return "" }

var _ Completer = NoopCompleter{}
