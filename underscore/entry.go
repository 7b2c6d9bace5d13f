package underscore

import "fmt"

// Entry is one (key, value) pair of a Container.
type Entry struct {
	Key   Key
	Value any
}

// E is shorthand for building an Entry from a plain key value.
// It panics if key cannot be converted with [KeyOf]; intended for literals.
//
//	underscore.Pairs(underscore.E("foo", 1), underscore.E(3, "bar"))
func E(key, value any) Entry {
	k, err := KeyOf(key)
	if err != nil {
		panic(err)
	}
	return Entry{Key: k, Value: value}
}

// String returns a human-readable representation: "key => value".
func (e Entry) String() string {
	return fmt.Sprintf("%s => %v", e.Key, e.Value)
}
