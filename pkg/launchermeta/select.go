package launchermeta

// SelectArguments flattens the entries whose rules allow ctx into one token
// list. Order across entries and within an entry's values is preserved;
// nothing is deduplicated.
func SelectArguments(args []Argument, ctx Context) []string {
	var out []string
	for _, arg := range args {
		if Evaluate(arg.Rules, ctx) {
			out = append(out, arg.Values...)
		}
	}
	return out
}

// SelectLibraries filters libs to those whose rules allow ctx, in original
// order.
func SelectLibraries(libs []Library, ctx Context) []Library {
	var out []Library
	for _, lib := range libs {
		if lib.AppliesTo(ctx) {
			out = append(out, lib)
		}
	}
	return out
}

// GameArgs resolves the game argument list for ctx. Nil for versions that
// only carry the legacy minecraftArguments blob.
func (v *Version) GameArgs(ctx Context) []string {
	if v.Arguments == nil {
		return nil
	}
	return SelectArguments(v.Arguments.Game, ctx)
}

// JVMArgs resolves the JVM argument list for ctx.
func (v *Version) JVMArgs(ctx Context) []string {
	if v.Arguments == nil {
		return nil
	}
	return SelectArguments(v.Arguments.JVM, ctx)
}

// ActiveLibraries returns the libraries that apply to ctx.
func (v *Version) ActiveLibraries(ctx Context) []Library {
	return SelectLibraries(v.Libraries, ctx)
}
