// Package reconcile provides the in-memory reconciliation engine that matches
// scanned identifiers against an expected manifest.
//
// # Architecture
//
// A Session holds all state of one audit:
//
// 1. Expected mapping: identifier to part, replaced wholesale by LoadExpected.
//
// 2. Scanned, Extra and Handled sets plus the duplicate and matched counters,
//    mutated only by Observe, ConsumeNext, LoadExpected and SelectMode.
//
// 3. Derived views: the missing work queue, the sorted lists and the Summary.
//    They are pulled, never pushed: every read recomputes them from the sets,
//    which is O(expected) and never stale.
//
// # Modes
//
// A new Session is unselected. SelectMode(ModeAudit) or
// SelectMode(ModeQuickCapture) enters a mode and always resets, even when the
// mode does not change. In audit mode without a loaded manifest, scans are
// captured rather than matched.
//
// # Usage Example
//
//	s := reconcile.NewSession()
//	_ = s.SelectMode(reconcile.ModeAudit)
//	_ = s.LoadExpected(expected)
//
//	if out, ok := s.Observe("abc123 "); ok {
//	    fmt.Println(out.Message()) // Expected: ABC123 • WidgetA
//	}
//
//	next, ok := s.ConsumeNext() // head of the missing queue, now handled
//
// # Concurrency
//
// Session takes no locks. Callers that receive events from several goroutines
// (HTTP handlers, decoder callbacks) serialize them around a single Session.
package reconcile
