package bundle

import (
	"github.com/oneconcern/scenebundle/pkg/scene"
	"go.uber.org/zap"
)

// Convert a scene document into a bundle.
//
// The document is loaded and checked before anything is written: an
// input error leaves the filesystem untouched. Failures past that point
// may leave a partially populated bundle.
func Convert(input string, opts ...Option) (Summary, error) {
	b := New(opts...)

	doc, err := scene.Load(b.fs, input)
	if err != nil {
		return Summary{}, err
	}
	if _, err = entriesOf(doc); err != nil {
		return Summary{}, err
	}

	if err = b.Initialize(); err != nil {
		return Summary{}, err
	}
	if err = b.ResolveDocument(doc); err != nil {
		return b.Summary(), err
	}
	if err = b.WriteDocument(doc); err != nil {
		return b.Summary(), err
	}
	if b.withManifest {
		if err = b.WriteManifest(); err != nil {
			return b.Summary(), err
		}
	}

	summary := b.Summary()
	b.l.Info("bundle written",
		zap.String("input", input),
		zap.String("bundle", b.root),
		zap.Int("references", summary.References),
		zap.Int("files", summary.Files),
		zap.String("size", summary.HumanSize()),
		zap.Int("collisions", summary.Collisions),
	)
	return summary, nil
}
