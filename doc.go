/*
Package astexpr parses and evaluates infix arithmetic and logical
expressions with caller-supplied variables.

An expression is built once into a binary abstract syntax tree, then
evaluated any number of times against a variable array. The arithmetic mode
is chosen at build time: Long for signed 64-bit integers, Double for IEEE-754
doubles. Variables are written `$1` ... `$9` or `${10}` and beyond; `$1`
maps to element 0 of the variable array.

Build and evaluate example:

	tree := astexpr.New()
	if err := tree.Build("(-$2 + sqrt($2^2 - 4*$1*$3)) / (2*$1)", astexpr.Double); err != nil {
		tree.Perror(os.Stderr, "Error:")
		// handle error
	}
	res, err := tree.EvalDouble([]float64{1, 6, 5})
	if err != nil {
		// handle error
	}
	_ = res // -1

Integer mode example:

	tree := astexpr.New()
	_ = tree.Build("2 + 3*4", astexpr.Long)
	res, _ := tree.EvalLong(nil) // 14

Tree drawing example:

	out, err := tree.Sprint()
	if err != nil {
		// handle error
	}
	fmt.Print(out)

A handle holds at most one expression and is not safe for concurrent use;
separate handles are independent. Destroy releases everything the handle
owns.
*/
package astexpr
