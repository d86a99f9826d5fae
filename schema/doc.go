// Copyright 2018 Andrew Fort

// Package schema checks model trees against the constraints of their
// type descriptors.
//
// Decoding a document only enforces what the element grammar can see
// one element at a time: names, namespaces, value syntax and maximum
// occurrences. Validate walks a complete tree and reports the rest.
//
// # Occurrence
//
// A required field that is unset is reported as missing-element, or
// as missing-attribute for fields carried as XML attributes. Fields
// with several values are checked against their minimum and maximum
// occurrence, and too-many-elements is reported when a maximum is
// exceeded.
//
// # Choices
//
// Exactly one member of each choice group must be present. No member
// is reported as missing-element naming the alternatives, and more
// than one as bad-element naming the extra members.
//
// # Values
//
// Integer values are checked against the range of their data type,
// since the generic node API accepts any int64.
//
// # Rules
//
// Extra document level checks are added with WithRules. Unique
// builds a rule rejecting list entries that share a key value.
package schema
