/*
Package model provides a generic, schema-driven document tree.

A Registry holds read-only descriptors for every node type of a
schema: its fields in declaration order, each field's kind (scalar,
enumeration, single containment or list containment), multiplicity,
default value and XML form. Registries are assembled once with a
Builder and shared afterwards.

Node is the single concrete tree element. Scalar fields carry an
is-set flag independent of their value, so a field assigned its
default is distinguishable from an omitted one; Unset restores the
default and clears the flag. Containment fields form a tree: placing
a node in a field first removes it from any previous owner, and
replacing a child detaches the old one.

Schema packages layer typed wrappers over Node by declaring
defined types (type Metric model.Node) whose methods address fields
by ID, so generic tools such as serializers and validators can walk
any tree through the Registry alone.
*/
package model
