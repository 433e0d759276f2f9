package scene

import (
	"bytes"

	"github.com/oneconcern/scenebundle/pkg/scene/status"
	"github.com/spf13/afero"
)

const (
	// SourcesKey names the collection of media sources
	SourcesKey = "sources"

	// TransitionsKey names the collection of scene transitions
	TransitionsKey = "transitions"

	// SettingsKey names the settings object of an entry
	SettingsKey = "settings"

	documentMode = 0644
)

// Collections of entries carrying settings, in processing order
var Collections = []string{SourcesKey, TransitionsKey}

// Document is a scene description document
type Document struct {
	root *Node
}

// NewDocument wraps a parsed tree. The root must be an object.
func NewDocument(root *Node) (*Document, error) {
	if !root.IsObject() {
		return nil, status.ErrNotAnObject.WrapMessage("found %v", root.Kind())
	}
	return &Document{root: root}, nil
}

// Root of the document tree
func (d *Document) Root() *Node {
	return d.root
}

// Entries of a collection, e.g. "sources".
//
// The collection must be present and be an array.
func (d *Document) Entries(collection string) ([]*Node, error) {
	entries, ok := d.root.Get(collection)
	if !ok {
		return nil, status.ErrMissingCollection.WrapMessage("%q", collection)
	}
	if entries.Kind() != Array {
		return nil, status.ErrInvalidCollection.WrapMessage("%q is %v", collection, entries.Kind())
	}
	return entries.Items(), nil
}

// Settings of an entry, or nil if the entry has no settings object
func Settings(entry *Node) *Node {
	settings, ok := entry.Get(SettingsKey)
	if !ok || !settings.IsObject() {
		return nil
	}
	return settings
}

// MarshalJSON encodes the document as compact JSON
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.root.MarshalJSON()
}

// Load a scene document from a file
func Load(fs afero.Fs, pth string) (*Document, error) {
	data, err := afero.ReadFile(fs, pth)
	if err != nil {
		return nil, status.ErrRead.Wrap(err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return NewDocument(root)
}

// Save a scene document to a file, replacing any previous content
func Save(fs afero.Fs, pth string, d *Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d.root); err != nil {
		return status.ErrWrite.Wrap(err)
	}
	if err := afero.WriteFile(fs, pth, buf.Bytes(), documentMode); err != nil {
		return status.ErrWrite.Wrap(err)
	}
	return nil
}
