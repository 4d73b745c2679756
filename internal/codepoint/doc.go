// Package codepoint turns the hexadecimal code point carried in a drawing's
// filename into the character it identifies.
//
// Resolution follows UTF-16: code points below 0x10000 become a single code
// unit, supplementary code points become a surrogate pair. The resolved
// Identity keeps both the code units and the decoded Go string.
package codepoint
