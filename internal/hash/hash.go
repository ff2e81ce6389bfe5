/*
Copyright © 2023 the GlobeMap authors.
This file is part of GlobeMap.

GlobeMap is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GlobeMap is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GlobeMap.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package hash creates cache keys from arbitrary values.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

// Hash returns a hash key for object. Values that implement fmt.Stringer
// are keyed by their string form.
func Hash(object interface{}) string {
	if s, ok := object.(fmt.Stringer); ok {
		return s.String()
	}
	h := fnv.New128a()

	if err := gob.NewEncoder(h).Encode(object); err == nil {
		return sum(h.Sum(nil), h.Size())
	}
	// Fall back to spew for values gob can't encode.
	h.Reset()
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	return sum(h.Sum(nil), h.Size())
}

// Key returns a hash key for object prefixed by kind, so that equal
// values of different kinds do not collide.
func Key(kind string, object interface{}) string {
	return kind + "_" + Hash(object)
}

func sum(b []byte, n int) string {
	return fmt.Sprintf("%x", b[0:n])
}
