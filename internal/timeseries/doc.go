// Package timeseries turns a set of variables into 24-period rows.
//
// EvaluateAll is the entry point. It checks that ids are unique, builds the
// referenced-by graph (package refgraph), orders the variables with
// scheduler.Schedule and then evaluates them one at a time in that order, so
// every external reference points at a variable whose row already exists.
//
// A variable that cannot be evaluated never aborts the call. Its whole row
// becomes model.RefError and evaluation moves on; variables that reference it
// fail in turn. Only duplicate ids and reference cycles are returned as
// errors, because no meaningful order exists for them.
//
// Per variable the rules are:
//
//   - Integration variables copy their pre-computed values.
//   - Variables that are not time series, or have no value, produce
//     placeholders only. Other variables can still reference them: their
//     Value is then evaluated once as a scalar and reused for every period.
//   - Time series emit StartingAt placeholders, then optionally one period
//     from Value1, then Value for every remaining period. "$n" reads the
//     variable's own row n periods back; "#id$n" reads row id n periods back.
//     Every computed period is floored to an integer.
package timeseries
