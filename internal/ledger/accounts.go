package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// AccountSet is a resolved set of account codes.
type AccountSet map[int]struct{}

// Contains reports whether code is in the set.
func (s AccountSet) Contains(code int) bool {
	_, ok := s[code]
	return ok
}

// ParseAccountExpr parses a comma-separated account expression into a set
// of concrete account codes. Supported elements:
//
//	7210        single code
//	6000-7999   inclusive range (bounds may be given in either order)
//	73*         prefix wildcard, resolved against universe
//
// An empty expression returns a nil set, meaning no account restriction.
// Wildcards match nothing when universe is empty, since they can only be
// resolved against codes that actually occur.
func ParseAccountExpr(expr string, universe []int) (AccountSet, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	out := make(AccountSet)
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.Contains(part, "-"):
			bounds := strings.SplitN(part, "-", 2)
			lo, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			hi, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("account expression: invalid range %q", part)
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			for code := lo; code <= hi; code++ {
				out[code] = struct{}{}
			}
		case strings.HasSuffix(part, "*"):
			prefix := strings.TrimSuffix(part, "*")
			if prefix == "" || !isDigits(prefix) {
				return nil, fmt.Errorf("account expression: invalid wildcard %q", part)
			}
			for _, code := range universe {
				if strings.HasPrefix(strconv.Itoa(code), prefix) {
					out[code] = struct{}{}
				}
			}
		default:
			code, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("account expression: invalid code %q", part)
			}
			out[code] = struct{}{}
		}
	}
	return out, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
