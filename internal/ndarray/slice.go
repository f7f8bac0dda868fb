package ndarray

import "fmt"

// End is the "to the end of the axis" sentinel used inside Range. Because
// 0 doubles as this sentinel, Range{0, 0} means "the whole axis", not an
// empty range — spec.md §9 names this ambiguity and adopts the source's
// runtime behavior rather than making an empty range expressible.
const End = 0

// Range is a half-open axis selector [Start, End). Negative values count
// from the end of the axis; End == 0 means "to the end of the axis".
type Range struct {
	Start int
	End   int
}

// NewAxis inserts an extent-1 axis at its position without consuming an
// axis of the parent view.
type NewAxis struct{}

// All selects an entire axis unchanged.
var All = Range{Start: 0, End: End}

// Specifier is the union of the three slice-specifier kinds accepted by
// View.Slice/Array.Slice: int (collapse), Range (sub-range), NewAxis
// (insert). It is modeled as `any` because Go has no closed sum type; the
// dispatch happens in resolveSlice via a type switch.
type Specifier = any

// resolvedSpec is the result of resolving one specifier against one axis
// of the parent shape.
type resolvedSpec struct {
	startOffset  int  // element-count offset along the parent axis
	outExtent    int  // 0 for a collapsed (integer) axis
	consumesAxis bool // false only for NewAxis
}

// resolveSlice implements spec.md §4.1 resolve_slice for one specifier
// against one parent axis extent.
func resolveSlice(spec Specifier, axisExtent int) resolvedSpec {
	switch s := spec.(type) {
	case int:
		start := s
		if start < 0 {
			start = axisExtent + start
		}
		if start < 0 || start >= axisExtent {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis of extent %d", s, axisExtent))
		}
		return resolvedSpec{startOffset: start, outExtent: 0, consumesAxis: true}
	case Range:
		start := s.Start
		if start < 0 {
			start = axisExtent + start
		}
		stop := s.End
		if stop > 0 {
			// already an absolute stop
		} else {
			stop = axisExtent + stop
		}
		extent := stop - start
		if extent <= 0 || extent > axisExtent || start < 0 {
			panic(fmt.Sprintf("ndarray: invalid range {%d,%d} for axis of extent %d", s.Start, s.End, axisExtent))
		}
		return resolvedSpec{startOffset: start, outExtent: extent, consumesAxis: true}
	case NewAxis:
		return resolvedSpec{startOffset: 0, outExtent: 1, consumesAxis: false}
	default:
		panic(fmt.Sprintf("ndarray: unsupported slice specifier %T", spec))
	}
}

// freeDimensions implements spec.md §4.1 free_dimensions: the rank of a
// view produced by slicing a rank-D view with the given specifiers.
func freeDimensions(parentRank int, specs []Specifier) int {
	consumed, inserted := countIntegersAndNewAxes(specs)
	return parentRank - consumed + inserted
}

func countIntegersAndNewAxes(specs []Specifier) (integers, newAxes int) {
	for _, s := range specs {
		switch s.(type) {
		case int:
			integers++
		case NewAxis:
			newAxes++
		}
	}
	return
}

// isPartialIndex reports whether a specifier list requires slicing (i.e.
// cannot be resolved as a plain element access): true when fewer than the
// parent's rank worth of axes are consumed by plain integers, or any
// specifier is a Range/NewAxis.
func isPartialIndex(parentRank int, specs []Specifier) bool {
	if len(specs) < parentRank {
		return true
	}
	for _, s := range specs {
		switch s.(type) {
		case int:
			continue
		default:
			return true
		}
	}
	return false
}
