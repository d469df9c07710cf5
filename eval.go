package astexpr

import "math"

// evalDouble computes the value of a subtree with double arithmetic. The
// fail flag short-circuits the recursion once set.
func evalDouble(n *node, vars []float64, fail *bool) float64 {
	if *fail {
		return 0
	}

	switch {
	case n.tok == tokNum:
		return n.val.d
	case n.tok == tokVar:
		return vars[n.val.l]
	case tokAttr[n.tok].argc == 1:
		v := evalDouble(n.left, vars, fail)
		switch n.tok {
		case tokNeg:
			return -v
		case tokNot:
			if v != 0 {
				return 0
			}
			return 1
		case tokSqrt:
			return math.Sqrt(v)
		case tokLn:
			return math.Log(v)
		case tokLog:
			return math.Log10(v)
		default:
			*fail = true
			return 0
		}
	default:
		v1 := evalDouble(n.left, vars, fail)
		v2 := evalDouble(n.right, vars, fail)
		switch n.tok {
		case tokPlus:
			return v1 + v2
		case tokMinus:
			return v1 - v2
		case tokMul:
			return v1 * v2
		case tokDiv:
			return v1 / v2
		case tokPow:
			return math.Pow(v1, v2)
		case tokAnd:
			if v1 != 0 && v2 != 0 {
				return 1
			}
			return 0
		case tokOr:
			if v1 != 0 || v2 != 0 {
				return 1
			}
			return 0
		case tokEq:
			if v1 == v2 {
				return 1
			}
			return 0
		case tokNeq:
			if v1 != v2 {
				return 1
			}
			return 0
		case tokGt:
			if v1 > v2 {
				return 1
			}
			return 0
		case tokGe:
			if v1 >= v2 {
				return 1
			}
			return 0
		case tokLt:
			if v1 < v2 {
				return 1
			}
			return 0
		case tokLe:
			if v1 <= v2 {
				return 1
			}
			return 0
		default:
			*fail = true
			return 0
		}
	}
}

// evalLong computes the value of a subtree with signed integer arithmetic.
// Square roots, logarithms and powers route through floating math and
// truncate toward zero. Integer division by zero is not guarded.
func evalLong(n *node, vars []int64, fail *bool) int64 {
	if *fail {
		return 0
	}

	switch {
	case n.tok == tokNum:
		return n.val.l
	case n.tok == tokVar:
		return vars[n.val.l]
	case tokAttr[n.tok].argc == 1:
		v := evalLong(n.left, vars, fail)
		switch n.tok {
		case tokNeg:
			return -v
		case tokNot:
			if v != 0 {
				return 0
			}
			return 1
		case tokSqrt:
			return int64(math.Sqrt(float64(v)))
		case tokLn:
			return int64(math.Log(float64(v)))
		case tokLog:
			return int64(math.Log10(float64(v)))
		default:
			*fail = true
			return 0
		}
	default:
		v1 := evalLong(n.left, vars, fail)
		v2 := evalLong(n.right, vars, fail)
		switch n.tok {
		case tokPlus:
			return v1 + v2
		case tokMinus:
			return v1 - v2
		case tokMul:
			return v1 * v2
		case tokDiv:
			return v1 / v2
		case tokPow:
			return int64(math.Pow(float64(v1), float64(v2)))
		case tokAnd:
			if v1 != 0 && v2 != 0 {
				return 1
			}
			return 0
		case tokOr:
			if v1 != 0 || v2 != 0 {
				return 1
			}
			return 0
		case tokEq:
			if v1 == v2 {
				return 1
			}
			return 0
		case tokNeq:
			if v1 != v2 {
				return 1
			}
			return 0
		case tokGt:
			if v1 > v2 {
				return 1
			}
			return 0
		case tokGe:
			if v1 >= v2 {
				return 1
			}
			return 0
		case tokLt:
			if v1 < v2 {
				return 1
			}
			return 0
		case tokLe:
			if v1 <= v2 {
				return 1
			}
			return 0
		default:
			*fail = true
			return 0
		}
	}
}
