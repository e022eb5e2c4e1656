package search

import "errors"

// ErrNoSolution reports that the frontier was exhausted (UCS, A*) or the
// depth cap was reached (IDS) without collecting every banana.
var ErrNoSolution = errors.New("no solution")
