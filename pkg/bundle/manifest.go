package bundle

import (
	"github.com/oneconcern/scenebundle/pkg/bundle/status"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// AssetKind tells whether an asset is a file or a directory tree
type AssetKind string

// Kinds of assets
const (
	FileAsset      AssetKind = "file"
	DirectoryAsset AssetKind = "directory"
)

// Asset relocated into a bundle
type Asset struct {
	Source    string    `json:"source" yaml:"source"`
	Reference string    `json:"reference" yaml:"reference"`
	Kind      AssetKind `json:"kind" yaml:"kind"`
	Size      int64     `json:"size" yaml:"size"`
}

// Manifest describes the content of a bundle
type Manifest struct {
	Document    string  `json:"document" yaml:"document"`
	Placeholder string  `json:"placeholder" yaml:"placeholder"`
	Assets      []Asset `json:"assets" yaml:"assets"`
}

// Manifest of the assets relocated so far
func (b *Bundle) Manifest() Manifest {
	return Manifest{
		Document:    DocumentFile,
		Placeholder: b.placeholder,
		Assets:      b.Assets(),
	}
}

// WriteManifest writes the manifest into the bundle, replacing any previous version
func (b *Bundle) WriteManifest() error {
	data, err := yaml.Marshal(b.Manifest())
	if err != nil {
		return status.ErrManifest.Wrap(err)
	}
	if err := afero.WriteFile(b.fs, b.ManifestPath(), data, fileMode); err != nil {
		return status.ErrManifest.Wrap(err)
	}
	return nil
}
