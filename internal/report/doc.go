// Package report renders analysis results. The text format is the classic
// console layout: a Firsts block and a Follows block with rule names padded
// to a common width, followed by nullability and any lint warnings. The JSON
// format carries the same data for tooling.
package report
