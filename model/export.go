package model

// Export converts a tree into maps, slices and scalars keyed by field
// name, suitable for JSON or YAML encoding. Only set fields are
// included; enumerations export their wire literal.
func Export(n *Node) map[string]any {
	if n == nil {
		return nil
	}
	out := map[string]any{}
	for i := range n.t.Fields {
		f := &n.t.Fields[i]
		if !n.IsSet(i) {
			continue
		}
		switch {
		case f.Kind == Enum:
			out[f.Name] = n.Get(i).(Literal).Value
		case f.Kind == ContainmentSingle:
			out[f.Name] = Export(n.Child(i))
		case f.Kind == ContainmentList:
			var items []any
			for _, c := range n.List(i).items {
				items = append(items, Export(c))
			}
			out[f.Name] = items
		case f.IsMany():
			out[f.Name] = n.Values(i)
		default:
			out[f.Name] = n.Get(i)
		}
	}
	return out
}
