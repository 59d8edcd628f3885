// Package token defines the reserved bytes of the KVS text format, the
// escaping applied to string values, and byte positions used in error
// messages.
//
// The format has five reserved bytes:
//
//	=  ends a key and starts a string value
//	;  ends a string value; ";;" is an escaped literal ";"
//	[  ends a key and opens a nested struct
//	]  closes a nested struct
//	~  starts metadata, skipped up to the next "="
//
// Everything else, including non UTF-8 bytes, passes through unchanged.
package token
