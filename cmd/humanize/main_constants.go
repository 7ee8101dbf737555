package main

// Command-line defaults
const (
	defaultJobs     = 4
	minRequiredArgs = 1
	singleFileArgs  = 2
)

// Output naming
const (
	humanizedSuffix = ".humanized"
	traceExt        = ".json"
)

// Plot labels
const (
	rawSeriesName       = "raw"
	humanizedSeriesName = "humanized"
	pathPlotTitle       = "Cursor path"
	timingPlotTitle     = "Sample timing"
	htmlTitle           = "Cursor trajectory"
)
