// Copyright © 2018 One Concern

/*
Package bundle relocates a scene document into a self-contained bundle.

A bundle is a directory holding the rewritten scene document (data.json)
and a flat asset directory (data/) with a copy of every file or directory
the document refers to:

	output/
	├── data.json
	└── data/
	    ├── bg.png
	    └── fonts/

Settings values are recognized as file references when their directory
part exists on disk. Such values are rewritten as "<REPLACE|ME>/data/<name>",
the placeholder being resolved by the consumer of the bundle.

Assets are named by their base name only: two distinct files sharing a
base name overwrite one another. Collisions are logged, not prevented.
*/
package bundle
