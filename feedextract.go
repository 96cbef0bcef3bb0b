// Package feedextract extracts structured post records from saved
// snapshots of a social-feed document and normalizes them into a stable
// schema for downstream tabular consolidation. The input is inconsistent,
// partially-contaminated markup with no reliable schema, so every decision
// (post vs. repost, acting author per nesting level, attached media,
// timestamp) is a multi-signal heuristic with an ordered fallback chain.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package feedextract
