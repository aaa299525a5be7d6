// Package tokens provides text measurement and character budgets.
//
// Budgets in this module are expressed in characters, meaning Unicode code
// points. A rune is never split and byte length is never used as a size.
//
// # Counter
//
// The Counter interface measures text:
//
//	counter := tokens.NewCharCounter()
//	n := counter.Count("héllo") // 5
//
// EstimatingCounter approximates model tokens (~4 characters per token) and
// is used to report how much context a rendered result will consume:
//
//	approx := tokens.EstimateTokens(output)
//
// # Budget
//
// Budget splits a global character limit into the fixed markup overhead and
// the part left for content:
//
//	budget := tokens.NewBudget(120000, overhead)
//	content := budget.Content() // may be negative
package tokens
