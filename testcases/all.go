package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"basic":         basicCases,
	"overlap":       overlapCases,
	"hole":          holeCases,
	"selfintersect": selfIntersectCases,
	"curve":         curveCases,
	"subpath":       subpathCases,
	"precision":     precisionCases,
	"degenerate":    degenerateCases,
}
