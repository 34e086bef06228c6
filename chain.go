package combo

// chain parses p (op p)* returning the operands and the operators between them.
//
// An operator failing uncommitted ends the chain, as does an operand failing
// uncommitted when its operator consumed nothing. An operand failing after its
// operator consumed input is committed.
func chain[I Element, A any](p Parser[I, A], op Parser[I, func(A, A) A]) func(c Cursor[I]) ([]A, []func(A, A) A, Result[struct{}]) {
	return func(c Cursor[I]) ([]A, []func(A, A) A, Result[struct{}]) {
		first := p.run(c)
		if first.Err != nil {
			return nil, nil, failed[struct{}](first)
		}
		operands := []A{first.Value}
		var operators []func(A, A) A
		total := first.Length
		for {
			cur := c.Advance(total)
			f := op.run(cur)
			if f.Err != nil {
				if f.Status == Committed {
					return nil, nil, failed[struct{}](f)
				}
				break
			}
			rhs := p.run(cur.Advance(f.Length))
			if rhs.Err != nil {
				if rhs.Status == Committed || f.Length != 0 {
					return nil, nil, failed[struct{}](rhs).WithCommittedFallback(true)
				}
				break
			}
			operands = append(operands, rhs.Value)
			operators = append(operators, f.Value)
			step := f.Length + rhs.Length
			total += step
			if step == 0 {
				break
			}
		}
		return operands, operators, Success(struct{}{}, total)
	}
}

// ChainLeft1 parses one or more p separated by op, folding left associatively with
// the function op produces. "a-b-c" is (a-b)-c.
func ChainLeft1[I Element, A any](p Parser[I, A], op Parser[I, func(A, A) A]) Parser[I, A] {
	run := chain(p, op)
	return New(func(c Cursor[I]) Result[A] {
		operands, operators, r := run(c)
		if r.Err != nil {
			return failed[A](r)
		}
		acc := operands[0]
		for i, f := range operators {
			acc = f(acc, operands[i+1])
		}
		return Success(acc, r.Length)
	})
}

// ChainRight1 parses one or more p separated by op, folding right associatively
// with the function op produces. "a^b^c" is a^(b^c).
func ChainRight1[I Element, A any](p Parser[I, A], op Parser[I, func(A, A) A]) Parser[I, A] {
	run := chain(p, op)
	return New(func(c Cursor[I]) Result[A] {
		operands, operators, r := run(c)
		if r.Err != nil {
			return failed[A](r)
		}
		acc := operands[len(operands)-1]
		for i := len(operators) - 1; i >= 0; i-- {
			acc = operators[i](operands[i], acc)
		}
		return Success(acc, r.Length)
	})
}

// ChainLeft0 is ChainLeft1, succeeding with def if there is no first operand.
func ChainLeft0[I Element, A any](p Parser[I, A], op Parser[I, func(A, A) A], def A) Parser[I, A] {
	return ChainLeft1(p, op).Or(Pure[I](def))
}

// ChainRight0 is ChainRight1, succeeding with def if there is no first operand.
func ChainRight0[I Element, A any](p Parser[I, A], op Parser[I, func(A, A) A], def A) Parser[I, A] {
	return ChainRight1(p, op).Or(Pure[I](def))
}
