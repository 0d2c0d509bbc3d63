// Package duplicate suggests probable duplicate persons within a Person
// Graph: two entries for the same real individual, created independently
// (for instance by merging two imported trees). It is not part of the
// Layout Engine or the Edit Operations — it is a supplemental quality
// check a wrapper application can run and then act on via the edit
// package's own operations (DeletePerson, LinkExistingRelative).
//
// SuggestMerges blocks candidates by a phonetic key over the surname
// plus a birth-year bucket so comparison stays near-linear instead of
// quadratic, then scores each candidate pair by weighted name/date/
// gender similarity, grounded on the teacher's
// blocking-plus-weighted-score duplicate detector.
package duplicate
