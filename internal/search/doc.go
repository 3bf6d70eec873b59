// Package search runs bounded rejection-sampling loops.
//
// Every generator in the module draws candidates until one is accepted.
// [Run] drives such a loop on one random stream and [First] fans it out to
// one worker per stream, sharing a single attempt budget. Both stop on the
// first accepted candidate, on a step error, on context cancellation, or
// when the [Budget] is spent, in which case they return an [*ExhaustedError].
package search
