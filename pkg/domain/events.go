package domain

// SearchHooks defines callbacks for search observability. All fields are
// optional; nil hooks cost nothing. Hooks may be called from multiple
// goroutines when parallel expansion is enabled.
type SearchHooks struct {
	// OnExpand fires once per expanded node with the current frontier size.
	OnExpand func(frontier int)
	// OnGenerate fires once per generated successor state.
	OnGenerate func()
	// OnFinish fires once with the final result.
	OnFinish func(*Result)
}
