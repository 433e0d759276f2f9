package scene

// Kind of a JSON value held by a Node
type Kind uint8

// Kinds of JSON values
const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Member of a JSON object
type Member struct {
	Key   string
	Value *Node
}

// Node is a JSON value.
//
// Objects keep their members in document order, duplicate keys included.
// Numbers keep their literal text.
type Node struct {
	kind    Kind
	text    string
	boolean bool
	members []Member
	items   []*Node
}

// NewNull builds a null value
func NewNull() *Node {
	return &Node{kind: Null}
}

// NewBool builds a boolean value
func NewBool(b bool) *Node {
	return &Node{kind: Bool, boolean: b}
}

// NewNumber builds a number from its JSON literal, e.g. "1.50" or "-3e7".
// The literal is not validated.
func NewNumber(literal string) *Node {
	return &Node{kind: Number, text: literal}
}

// NewString builds a string value
func NewString(s string) *Node {
	return &Node{kind: String, text: s}
}

// NewObject builds an object with members in the given order
func NewObject(members ...Member) *Node {
	return &Node{kind: Object, members: members}
}

// NewArray builds an array
func NewArray(items ...*Node) *Node {
	return &Node{kind: Array, items: items}
}

// Kind of this value. A nil node is null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// IsObject tells if this value is an object
func (n *Node) IsObject() bool {
	return n.Kind() == Object
}

// Str returns the value of a string node
func (n *Node) Str() (string, bool) {
	if n.Kind() != String {
		return "", false
	}
	return n.text, true
}

// SetStr replaces the value held by this node with a string
func (n *Node) SetStr(s string) {
	*n = Node{kind: String, text: s}
}

// BoolValue returns the value of a boolean node
func (n *Node) BoolValue() (bool, bool) {
	if n.Kind() != Bool {
		return false, false
	}
	return n.boolean, true
}

// NumberLiteral returns the literal of a number node
func (n *Node) NumberLiteral() (string, bool) {
	if n.Kind() != Number {
		return "", false
	}
	return n.text, true
}

// Members of an object, in document order
func (n *Node) Members() []Member {
	if n.Kind() != Object {
		return nil
	}
	return n.members
}

// Items of an array
func (n *Node) Items() []*Node {
	if n.Kind() != Array {
		return nil
	}
	return n.items
}

// Get the value of a member in an object.
//
// When a key appears more than once, the last occurrence wins.
func (n *Node) Get(key string) (*Node, bool) {
	members := n.Members()
	for i := len(members) - 1; i >= 0; i-- {
		if members[i].Key == key {
			return members[i].Value, true
		}
	}
	return nil, false
}

// Set the value of a member, appending it when absent. Only the last
// occurrence of a duplicate key is replaced.
func (n *Node) Set(key string, value *Node) {
	if n.Kind() != Object {
		return
	}
	for i := len(n.members) - 1; i >= 0; i-- {
		if n.members[i].Key == key {
			n.members[i].Value = value
			return
		}
	}
	n.members = append(n.members, Member{Key: key, Value: value})
}

// Clone returns a deep copy of this node
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, text: n.text, boolean: n.boolean}
	if n.members != nil {
		c.members = make([]Member, len(n.members))
		for i, m := range n.members {
			c.members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
	}
	if n.items != nil {
		c.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			c.items[i] = item.Clone()
		}
	}
	return c
}

// Equal tells if two trees hold the same values, members compared in order
func (n *Node) Equal(other *Node) bool {
	if n.Kind() != other.Kind() {
		return false
	}
	switch n.Kind() {
	case Null:
		return true
	case Bool:
		return n.boolean == other.boolean
	case Number, String:
		return n.text == other.text
	case Array:
		if len(n.items) != len(other.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(n.members) != len(other.members) {
			return false
		}
		for i := range n.members {
			if n.members[i].Key != other.members[i].Key || !n.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
