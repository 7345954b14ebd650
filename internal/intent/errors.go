package intent

import "errors"

// ErrBudgetExceeded is returned before any oracle round-trip when the budget
// oracle denies the request. It is a hard precondition failure, distinct from
// every classification outcome.
var ErrBudgetExceeded = errors.New("token budget exceeded")
