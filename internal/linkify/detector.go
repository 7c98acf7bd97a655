package linkify

import "fmt"

// Detector finds URL-like substrings in text. Implementations must be
// stateless per call and safe for concurrent use, since a single instance is
// shared by reference across calls.
//
// PreTest is a cheap short-circuit: it may return true for text Scan finds
// nothing in, but must return false only when Scan is guaranteed to return
// no spans for that exact source. Scan must return spans ordered by
// ascending Start, non-overlapping and within bounds; a violation makes
// Split's behavior undefined.
type Detector interface {
	PreTest(source string) bool
	Scan(source string) []Span
}

// Adapter wraps a Detector so that detection failure degrades to "no links
// found" instead of propagating. OnFailure, when set, receives the recovered
// failure; it is diagnostic only and must not retain the error across calls.
type Adapter struct {
	Detector  Detector
	OnFailure func(error)
}

// SafeScan runs the detector's full scan, absorbing a panicking detector
// into an empty result.
func (a *Adapter) SafeScan(source string) (spans []Span) {
	if a.Detector == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			if a.OnFailure != nil {
				a.OnFailure(fmt.Errorf("link detector failed: %v", r))
			}
		}
	}()
	return a.Detector.Scan(source)
}

func (a *Adapter) safePreTest(source string) (hit bool) {
	defer func() {
		if r := recover(); r != nil {
			hit = false
			if a.OnFailure != nil {
				a.OnFailure(fmt.Errorf("link pre-test failed: %v", r))
			}
		}
	}()
	return a.Detector.PreTest(source)
}

// Linkify runs pre-test, scan and segmentation in one step. With no
// detector, a negative pre-test, or a failed scan the result is the
// single-literal segmentation of source.
func (a *Adapter) Linkify(source string, policy LabelPolicy) []Segment {
	if a.Detector == nil || !a.safePreTest(source) {
		return Split(source, nil, policy)
	}
	return Split(source, a.SafeScan(source), policy)
}
