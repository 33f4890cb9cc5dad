// Package kind defines the closed set of data kinds a raw environment value
// can be coerced into.
//
// A Kind is a small integer constant. The zero value, Invalid, is not a member
// of the set, so an uninitialised Kind is always rejected by IsValid before any
// conversion is attempted.
//
// Kinds have stable lower-case names ("integer", "list", "uuid", ...) that are
// used by Parse and by the text encoding, which makes them usable as fields in
// env-tagged config structs and in YAML manifests:
//
//	k, err := kind.Parse("integer")
//	if err != nil {
//	    // kind.ErrUnknownKind
//	}
//	fmt.Println(k) // integer
package kind
