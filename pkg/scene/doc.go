// Copyright © 2018 One Concern

/*
Package scene models a scene description document.

A scene document is a JSON object carrying two collections of entries,
"sources" and "transitions". Each entry holds a "settings" object.

The document is decoded into a tree of Node values which keeps object
members in document order and number literals as written, so that a
document re-encodes byte for byte, save for the values that were changed.
*/
package scene
