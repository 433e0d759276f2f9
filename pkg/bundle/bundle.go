// Copyright © 2018 One Concern

package bundle

import (
	"path/filepath"

	units "github.com/docker/go-units"
	"github.com/oneconcern/scenebundle/pkg/bundle/status"
	"github.com/oneconcern/scenebundle/pkg/scene"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// DefaultRoot is the bundle directory, relative to the working directory
	DefaultRoot = "output"

	// DefaultPlaceholder is the token standing for the bundle root in rewritten references
	DefaultPlaceholder = "<REPLACE|ME>"

	// DataDir is the asset directory, inside the bundle root
	DataDir = "data"

	// DocumentFile is the rewritten scene document, inside the bundle root
	DocumentFile = "data.json"

	// ManifestFile lists relocated assets, inside the bundle root
	ManifestFile = "manifest.yaml"

	dirMode  = 0755
	fileMode = 0644
)

// Summary of the work done on a bundle
type Summary struct {
	// References counts the rewritten settings values
	References int
	// Files counts the copied files
	Files int
	// Bytes counts the copied bytes
	Bytes int64
	// Collisions counts the assets overwritten by a different source with the same name
	Collisions int
}

// HumanSize of the copied content
func (s Summary) HumanSize() string {
	return units.HumanSize(float64(s.Bytes))
}

// Bundle collects the assets referenced by scene documents.
//
// A Bundle is not safe for concurrent use.
type Bundle struct {
	fs           afero.Fs
	root         string
	placeholder  string
	withManifest bool
	l            *zap.Logger

	assets  []Asset
	byName  map[string]int
	summary Summary
}

// New bundle, rooted at DefaultRoot unless configured otherwise
func New(opts ...Option) *Bundle {
	b := &Bundle{
		fs:          afero.NewOsFs(),
		root:        DefaultRoot,
		placeholder: DefaultPlaceholder,
		l:           zap.NewNop(),
		byName:      make(map[string]int),
	}
	for _, apply := range opts {
		apply(b)
	}
	return b
}

// Root directory of this bundle
func (b *Bundle) Root() string {
	return b.root
}

// DataPath is the directory holding the assets
func (b *Bundle) DataPath() string {
	return filepath.Join(b.root, DataDir)
}

// DocumentPath is the location of the rewritten scene document
func (b *Bundle) DocumentPath() string {
	return filepath.Join(b.root, DocumentFile)
}

// ManifestPath is the location of the asset manifest
func (b *Bundle) ManifestPath() string {
	return filepath.Join(b.root, ManifestFile)
}

// Summary of the assets relocated so far
func (b *Bundle) Summary() Summary {
	return b.summary
}

// Assets relocated so far, in order of first reference.
//
// When several sources share a base name, the asset reflects the last copy.
func (b *Bundle) Assets() []Asset {
	return append([]Asset(nil), b.assets...)
}

// Initialize the bundle directories.
//
// Existing directories and their content are left untouched.
func (b *Bundle) Initialize() error {
	for _, dir := range []string{b.root, b.DataPath()} {
		if err := b.fs.MkdirAll(dir, dirMode); err != nil {
			return status.ErrInitialize.Wrap(err)
		}
	}
	return nil
}

// WriteDocument writes the scene document into the bundle, replacing any previous version
func (b *Bundle) WriteDocument(doc *scene.Document) error {
	return scene.Save(b.fs, b.DocumentPath(), doc)
}
