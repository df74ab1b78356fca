// Package spectrum holds the spectral-fit pipeline: observations of binned
// counts with instrument response, fit-range selection, forward-folded
// count prediction, statistic evaluation and the driver that hands the
// aggregated statistic to a minimization backend.
//
// The flow is selector -> predictor -> statistic -> aggregator, repeated
// per optimizer iteration, then one result record per observation.
package spectrum
