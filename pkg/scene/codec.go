package scene

import (
	"bytes"
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/scenebundle/pkg/scene/status"
)

var (
	_ json.Marshaler   = &Node{}
	_ json.Unmarshaler = &Node{}
)

const streamBufferSize = 4096

// Parse a JSON document into a tree.
func Parse(data []byte) (*Node, error) {
	// the iterator accepts some malformed number literals: check the grammar first
	if !json.Valid(data) {
		return nil, status.ErrInvalidJSON.WrapMessage("malformed JSON document")
	}

	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	node := readNode(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, status.ErrInvalidJSON.Wrap(iter.Error)
	}
	return node, nil
}

func readNode(iter *jsoniter.Iterator) *Node {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return NewString(iter.ReadString())
	case jsoniter.NumberValue:
		return NewNumber(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		return NewBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return NewNull()
	case jsoniter.ArrayValue:
		node := NewArray()
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			node.items = append(node.items, readNode(iter))
			return iter.Error == nil
		})
		return node
	case jsoniter.ObjectValue:
		node := NewObject()
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			node.members = append(node.members, Member{Key: key, Value: readNode(iter)})
			return iter.Error == nil
		})
		return node
	default:
		iter.ReportError("readNode", "unexpected JSON value")
		return nil
	}
}

// Encode a tree as compact JSON.
//
// Strings are escaped without HTML escaping. Numbers are written as their literal.
func Encode(w io.Writer, n *Node) error {
	stream := jsoniter.NewStream(jsoniter.ConfigDefault, w, streamBufferSize)
	writeNode(stream, n)
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

func writeNode(stream *jsoniter.Stream, n *Node) {
	switch n.Kind() {
	case Null:
		stream.WriteNil()
	case Bool:
		stream.WriteBool(n.boolean)
	case Number:
		stream.WriteRaw(n.text)
	case String:
		stream.WriteString(n.text)
	case Array:
		stream.WriteArrayStart()
		for i, item := range n.items {
			if i > 0 {
				stream.WriteMore()
			}
			writeNode(stream, item)
		}
		stream.WriteArrayEnd()
	case Object:
		stream.WriteObjectStart()
		for i, member := range n.members {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(member.Key)
			writeNode(stream, member.Value)
		}
		stream.WriteObjectEnd()
	}
}

// MarshalJSON encodes this tree as compact JSON
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON value into this node
func (n *Node) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}
