// Package checks implements the scorecard checks. Every check is a pure
// function over extracted filing metrics and market data, returning a
// CheckResult with its status, interpretation and the evidence bundles that
// back the numbers. Missing inputs resolve to NA, never an error.
package checks
