package astexpr

// Options controls the expression syntax markers and output rendering.
type Options struct {
	// VarFlag is the character introducing a variable reference ('$' by default).
	VarFlag byte
	// VarStart is the character opening a bracketed variable index ('{' by default).
	VarStart byte
	// VarEnd is the character closing a bracketed variable index ('}' by default).
	VarEnd byte
	// DisableColor disables ANSI colors in the tree drawer output.
	DisableColor bool
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{VarFlag: '$', VarStart: '{', VarEnd: '}'}
	}

	out := *o
	if out.VarFlag == 0 {
		out.VarFlag = '$'
	}
	if out.VarStart == 0 {
		out.VarStart = '{'
	}
	if out.VarEnd == 0 {
		out.VarEnd = '}'
	}

	return out
}
