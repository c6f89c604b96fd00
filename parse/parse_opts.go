package parse

type parseOpts struct {
	verbose    bool
	requireEOF bool
}

func defaultOpts() parseOpts {
	return parseOpts{verbose: true}
}

type ParseOption func(*parseOpts)

// VerboseChecking controls whether the parser asserts the kind of the
// current token before each production. It is on by default. Turning it off
// skips those checks; malformed input then yields unspecified results.
func VerboseChecking(v bool) ParseOption {
	return func(o *parseOpts) { o.verbose = v }
}

// RequireEOF makes Parse and ParseString fail when tokens follow the root
// value.
func RequireEOF(v bool) ParseOption {
	return func(o *parseOpts) { o.requireEOF = v }
}
