/*
Package splmodel is a set of libraries for reading, building, checking and
writing SPL operator model documents.

An operator model is an XML document describing a stream processing
operator: its implementation context, parameters, input and output ports
and the libraries it depends upon. Documents are held as generic typed
trees whose shape is given by type descriptors.

The model sub-directory holds the generic tree (Node, List, Registry,
Builder). The operator sub-directory registers the operator model and
common vocabulary types and offers typed accessors over them. The codec
sub-directory decodes and encodes documents and evaluates XPath queries,
schema checks occurrence and value constraints on a decoded tree, and
spldoc summarizes an operator for reference documentation.

The splmodel command in cmd/splmodel exposes all of these on the command
line.
*/
package splmodel
