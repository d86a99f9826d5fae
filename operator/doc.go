/*
Package operator is the typed object model of SPL operator model
documents (the operatorModel.xml file describing a primitive
operator's context, parameters, metrics and ports).

Every schema element is a defined type over model.Node, so a typed
element and its generic node are the same pointer:

	f := operator.DefaultFactory()
	ctx := f.NewContext()
	ctx.SetProvidesSingleThreadedContext(operator.SingleThreadedContextAlways)
	n := ctx.Node() // generic view for serializers and validators

Fields the schema marks as defaultable have IsSetX and UnsetX methods
in addition to the getter and setter. List containments are returned
as live model.List values: appending to or removing from them changes
the tree.

Call Init at program start to build the shared descriptor registry;
Registry and DefaultFactory initialize it on first use otherwise.
*/
package operator
