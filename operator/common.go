package operator

import "github.com/andaru/splmodel/model"

// Description is documentation text with optional links. It lives in
// the common namespace.
type Description model.Node

// Node returns the description as a generic node.
func (d *Description) Node() *model.Node { return (*model.Node)(d) }

// Value returns the description value.
func (d *Description) Value() string     { return d.Node().String(descriptionValue) }
func (d *Description) SetValue(v string) { d.Node().Set(descriptionValue, v) }

// DocHref returns the link to further documentation.
func (d *Description) DocHref() string     { return d.Node().String(descriptionDocHref) }
func (d *Description) SetDocHref(v string) { d.Node().Set(descriptionDocHref, v) }

// SampleURI returns the description sample URI.
func (d *Description) SampleURI() string     { return d.Node().String(descriptionSampleURI) }
func (d *Description) SetSampleURI(v string) { d.Node().Set(descriptionSampleURI, v) }

// Text returns the description text, or "" for a nil description.
func (d *Description) Text() string {
	if d == nil {
		return ""
	}
	return d.Value()
}

// Library is a C++ library dependency.
type Library model.Node

func asLibrary(n *model.Node) *Library { return (*Library)(n) }

// Node returns the library as a generic node.
func (l *Library) Node() *model.Node { return (*model.Node)(l) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (l *Library) Description() *Description {
	return (*Description)(l.Node().Child(libraryDescription))
}
func (l *Library) SetDescription(v *Description) { l.Node().SetChild(libraryDescription, v.Node()) }

// ManagedLibrary returns the managed library child, or nil when absent;
// SetManagedLibrary replaces it.
func (l *Library) ManagedLibrary() *ManagedLibrary {
	return (*ManagedLibrary)(l.Node().Child(libraryManagedLibrary))
}
func (l *Library) SetManagedLibrary(v *ManagedLibrary) {
	l.Node().SetChild(libraryManagedLibrary, v.Node())
}

// ManagedLibrary lists library names, search paths, include paths and
// an optional command producing them.
type ManagedLibrary model.Node

// Node returns the managed library as a generic node.
func (l *ManagedLibrary) Node() *model.Node { return (*model.Node)(l) }

// Libs returns the library names in document order.
func (l *ManagedLibrary) Libs() []string      { return l.Node().Strings(managedLibraryLib) }
func (l *ManagedLibrary) SetLibs(v ...string) { l.Node().Set(managedLibraryLib, v) }
func (l *ManagedLibrary) AddLib(v string)     { l.Node().AddValue(managedLibraryLib, v) }

// LibPaths returns the lib paths in document order.
func (l *ManagedLibrary) LibPaths() []string      { return l.Node().Strings(managedLibraryLibPath) }
func (l *ManagedLibrary) SetLibPaths(v ...string) { l.Node().Set(managedLibraryLibPath, v) }
func (l *ManagedLibrary) AddLibPath(v string)     { l.Node().AddValue(managedLibraryLibPath, v) }

// IncludePaths returns the include paths in document order.
func (l *ManagedLibrary) IncludePaths() []string      { return l.Node().Strings(managedLibraryIncludePath) }
func (l *ManagedLibrary) SetIncludePaths(v ...string) { l.Node().Set(managedLibraryIncludePath, v) }
func (l *ManagedLibrary) AddIncludePath(v string)     { l.Node().AddValue(managedLibraryIncludePath, v) }

// Command returns the managed library command.
func (l *ManagedLibrary) Command() string     { return l.Node().String(managedLibraryCommand) }
func (l *ManagedLibrary) SetCommand(v string) { l.Node().Set(managedLibraryCommand, v) }

// JavaOpLibrary is a Java class path dependency.
type JavaOpLibrary model.Node

func asJavaOpLibrary(n *model.Node) *JavaOpLibrary { return (*JavaOpLibrary)(n) }

// Node returns the java op library as a generic node.
func (l *JavaOpLibrary) Node() *model.Node { return (*model.Node)(l) }

// Description returns the description child, or nil when absent;
// SetDescription replaces it.
func (l *JavaOpLibrary) Description() *Description {
	return (*Description)(l.Node().Child(libraryDescription))
}
func (l *JavaOpLibrary) SetDescription(v *Description) {
	l.Node().SetChild(libraryDescription, v.Node())
}

// ManagedLibrary returns the managed library child, or nil when absent;
// SetManagedLibrary replaces it.
func (l *JavaOpLibrary) ManagedLibrary() *JavaOpManagedLibrary {
	return (*JavaOpManagedLibrary)(l.Node().Child(libraryManagedLibrary))
}
func (l *JavaOpLibrary) SetManagedLibrary(v *JavaOpManagedLibrary) {
	l.Node().SetChild(libraryManagedLibrary, v.Node())
}

type JavaOpManagedLibrary model.Node

// Node returns the java op managed library as a generic node.
func (l *JavaOpManagedLibrary) Node() *model.Node { return (*model.Node)(l) }

// LibPaths returns the lib paths in document order.
func (l *JavaOpManagedLibrary) LibPaths() []string      { return l.Node().Strings(javaOpManagedLibraryLibPath) }
func (l *JavaOpManagedLibrary) SetLibPaths(v ...string) { l.Node().Set(javaOpManagedLibraryLibPath, v) }
func (l *JavaOpManagedLibrary) AddLibPath(v string)     { l.Node().AddValue(javaOpManagedLibraryLibPath, v) }

// Command returns the java op managed library command.
func (l *JavaOpManagedLibrary) Command() string     { return l.Node().String(javaOpManagedLibraryCommand) }
func (l *JavaOpManagedLibrary) SetCommand(v string) { l.Node().Set(javaOpManagedLibraryCommand, v) }
