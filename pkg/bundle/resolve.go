package bundle

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oneconcern/scenebundle/pkg/bundle/status"
	"github.com/oneconcern/scenebundle/pkg/scene"
	"go.uber.org/zap"
)

// extended-length path prefix on windows, e.g. \\?\C:\very\long\path
const extendedLengthPrefix = `\\?\`

// ResolveDocument relocates the assets referenced by the settings of
// every source, then every transition, in document order.
func (b *Bundle) ResolveDocument(doc *scene.Document) error {
	entries, err := entriesOf(doc)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		settings := scene.Settings(entry)
		if settings == nil {
			continue
		}
		if err := b.Resolve(settings); err != nil {
			return err
		}
	}
	return nil
}

// Resolve relocates the assets referenced by a settings tree, and
// rewrites the references in place.
//
// Only string values and nested objects are considered: arrays are
// left untouched.
func (b *Bundle) Resolve(tree *scene.Node) error {
	for _, member := range tree.Members() {
		value := member.Value
		switch value.Kind() {
		case scene.String:
			if err := b.resolveValue(member.Key, value); err != nil {
				return err
			}
		case scene.Object:
			if err := b.Resolve(value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Bundle) resolveValue(key string, value *scene.Node) error {
	pth, _ := value.Str()
	source, dir, base := splitPath(pth)
	if dir == "" || !isAssetName(base) {
		return nil
	}
	if _, err := b.fs.Stat(dir); err != nil {
		return nil
	}

	reference, err := b.relocate(source, base)
	if err != nil {
		return err
	}
	reference = normalizeReference(reference, pth)
	b.l.Debug("rewrite reference", zap.String("key", key), zap.String("from", pth), zap.String("to", reference))
	value.SetStr(reference)
	b.summary.References++
	return nil
}

func (b *Bundle) relocate(source, base string) (string, error) {
	destination := filepath.Join(b.DataPath(), base)
	stats, err := copyTree(b.fs, source, destination)
	if err != nil {
		return "", status.ErrCopy.Wrap(err)
	}
	b.summary.Files += stats.files
	b.summary.Bytes += stats.bytes

	asset := Asset{
		Source:    source,
		Reference: path.Join(b.placeholder, DataDir, base),
		Kind:      stats.kind(),
		Size:      stats.bytes,
	}
	b.record(base, asset)
	return asset.Reference, nil
}

func (b *Bundle) record(base string, asset Asset) {
	idx, ok := b.byName[base]
	if !ok {
		b.byName[base] = len(b.assets)
		b.assets = append(b.assets, asset)
		return
	}

	previous := b.assets[idx]
	if filepath.Clean(previous.Source) != filepath.Clean(asset.Source) {
		b.summary.Collisions++
		b.l.Warn("asset name collision: previous copy overwritten",
			zap.String("name", base),
			zap.String("previous", previous.Source),
			zap.String("source", asset.Source),
		)
	}
	b.assets[idx] = asset
}

// entriesOf lists all entries of a document, sources first
func entriesOf(doc *scene.Document) ([]*scene.Node, error) {
	var all []*scene.Node
	for _, collection := range scene.Collections {
		entries, err := doc.Entries(collection)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// splitPath splits a path into its directory and base name, after
// trailing separators are removed. The directory part is empty when
// the path holds no separator.
func splitPath(pth string) (source, dir, base string) {
	source = pth
	for len(source) > 0 && os.IsPathSeparator(source[len(source)-1]) {
		source = source[:len(source)-1]
	}
	if source == "" {
		return "", "", ""
	}

	dir, base = filepath.Split(source)
	vol := len(filepath.VolumeName(dir))
	for len(dir) > vol+1 && os.IsPathSeparator(dir[len(dir)-1]) {
		dir = dir[:len(dir)-1]
	}
	return source, dir, base
}

func isAssetName(base string) bool {
	return base != "" && base != "." && base != ".."
}

// normalizeReference converts back-slashes to forward slashes, unless the
// original path is an extended-length path or holds non-ASCII characters.
func normalizeReference(reference, original string) string {
	if strings.HasPrefix(original, extendedLengthPrefix) || hasNonASCII(original) || hasNonASCII(reference) {
		return reference
	}
	return strings.ReplaceAll(reference, `\`, "/")
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 0x80 {
			return true
		}
	}
	return false
}
