/*
Package scenebundle provides CLI tooling to relocate scene documents.

A scene document describes media sources and transitions, whose settings
refer to files scattered on disk. scenebundle gathers those files into a
single bundle directory and rewrites the references relative to the bundle,
so the scene can be distributed independently of the original layout.

See cmd/scenebundle for the command line, and pkg/bundle for the library.
*/
package scenebundle
