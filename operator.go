package rx

// Pipe threads an Observable through an ordered sequence of operators.
// Composition only: no subscription happens and no side effects run until
// the result is subscribed. Order matters; a Filter placed after a Map sees
// transformed values.
func Pipe(source Observable, ops ...Operator) Observable {
	out := source
	for _, op := range ops {
		if op == nil {
			panic("rx: Pipe called with a nil operator")
		}
		out = op(out)
	}
	return out
}
