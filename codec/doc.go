// Package codec reads and writes model trees as XML documents.
//
// Decoding parses the input with xmlquery, locates the document
// element with an XPath selector and fills a model.Node tree by
// matching element and attribute names against the registry's field
// descriptors. Unknown elements and attributes are errors in strict
// mode; otherwise they are skipped and reported as warnings.
// Malformed values are always errors.
//
// Encoding writes the tree back in field declaration order, using
// literal namespace prefixes so a decoded document keeps the prefixes
// it was written with.
package codec
