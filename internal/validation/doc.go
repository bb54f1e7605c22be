// Package validation computes sigma deviations for every check row and
// classifies them.
//
// Evaluation is exact: values, uncertainties, and sigma stay arbitrary
// precision rationals up to the classification decision, so the category
// boundaries at 1, 2, and 3 sigma behave exactly (a deviation of exactly
// one sigma is MARGINAL, never PASS). Each check is evaluated
// independently; a bad row becomes MISSING or INVALID data in the report
// rather than an error.
package validation
