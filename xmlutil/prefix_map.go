package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map. The default namespace is
// stored under the empty prefix.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the namespace
// declarations found in the passed XML attributes.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		if pfx, ok := DeclaredPrefix(attr.Name); ok {
			pmap[pfx] = attr.Value
		}
	}
	return pmap
}

// DeclaredPrefix reports whether name is a namespace declaration
// attribute and returns the prefix it declares ("" for xmlns=).
func DeclaredPrefix(name xml.Name) (string, bool) {
	switch {
	case name.Space == "xmlns":
		return name.Local, true
	case name.Space == "" && name.Local == "xmlns":
		return "", true
	case name.Space == "" && len(name.Local) > 6 && name.Local[:6] == "xmlns:":
		return name.Local[6:], true
	}
	return "", false
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix. The default namespace, if any, comes first.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for _, k := range m.prefixes() {
		if k == "" {
			a = append(a, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: m[k]})
			continue
		}
		a = append(a, xml.Attr{Name: xml.Name{Space: "xmlns", Local: k}, Value: m[k]})
	}
	return a
}

// RawAttr is like Attr but returns unresolved names ("xmlns:pfx"), as
// needed when writing tokens whose names carry literal prefixes.
func (m PrefixMap) RawAttr() (a []xml.Attr) {
	for _, k := range m.prefixes() {
		name := "xmlns"
		if k != "" {
			name += ":" + k
		}
		a = append(a, xml.Attr{Name: xml.Name{Local: name}, Value: m[k]})
	}
	return a
}

func (m PrefixMap) prefixes() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted.
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for _, k := range m.prefixes() {
		if m[k] == nsURI {
			pfxes = append(pfxes, k)
		}
	}
	return pfxes
}

// Set binds prefix to nsURI unless the namespace already has a prefix.
// It returns the prefix in effect for nsURI.
func (m PrefixMap) Set(prefix, nsURI string) string {
	if pfxes := m.Prefix(nsURI); len(pfxes) > 0 {
		return pfxes[0]
	}
	m[prefix] = nsURI
	return prefix
}

// Qualify returns the prefixed form of name ("pfx:local", or "local"
// for the default namespace). ok is false if name's namespace has no
// binding in m.
func (m PrefixMap) Qualify(name xml.Name) (qname string, ok bool) {
	pfxes := m.Prefix(name.Space)
	if len(pfxes) == 0 {
		return name.Local, name.Space == ""
	}
	if pfxes[0] == "" {
		return name.Local, true
	}
	return pfxes[0] + ":" + name.Local, true
}
