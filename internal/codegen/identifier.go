// File: identifier.go
// Title: Go Identifier Derivation Implementation
// Description: Implements derivation of exported Go identifiers from
//              translation keys, parameter names, and locale codes,
//              including collision suffixing.
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: Initial implementation

package codegen

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// exportName derives an exported Go identifier from a translation key.
// Segments split on dots, hyphens, underscores, and spaces are pascal-cased
// and joined; a digit-leading result gets a "Key" prefix.
func exportName(key string) string {
	segments := strings.FieldsFunc(key, func(r rune) bool {
		return r == '.' || r == '-' || r == '_' || r == ' '
	})

	var builder strings.Builder
	for _, segment := range segments {
		for i, r := range segment {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			if i == 0 {
				builder.WriteRune(unicode.ToUpper(r))
			} else {
				builder.WriteRune(r)
			}
		}
	}

	name := builder.String()
	if name == "" {
		return "Key"
	}
	if unicode.IsDigit(rune(name[0])) {
		return "Key" + name
	}
	return name
}

// localeIdent derives the identifier suffix for a locale code, e.g.
// "es-MX" becomes "EsMX"
func localeIdent(code string) string {
	segments := strings.FieldsFunc(code, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})

	var builder strings.Builder
	for _, segment := range segments {
		for i, r := range segment {
			if i == 0 {
				builder.WriteRune(unicode.ToUpper(r))
			} else {
				builder.WriteRune(r)
			}
		}
	}

	ident := builder.String()
	if ident == "" {
		return "Unknown"
	}
	return ident
}

// assignIdentifiers maps every key to a unique exported identifier. The
// reserved names are the declarations the index file emits; a key that
// would shadow one gets suffixed like any other collision. Keys are
// processed in sorted order so a collision always suffixes the same key;
// the second claimant of a name gets "2", the third "3", and so on.
func assignIdentifiers(keys []string, reserved []string) map[string]string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	idents := make(map[string]string, len(sorted))
	claimed := make(map[string]int, len(sorted)+len(reserved))
	for _, name := range reserved {
		claimed[name] = 1
	}

	for _, key := range sorted {
		name := exportName(key)
		claimed[name]++
		if n := claimed[name]; n > 1 {
			name = name + strconv.Itoa(n)
		}
		idents[key] = name
	}

	return idents
}
