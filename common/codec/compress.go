// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package codec

import (
	"github.com/golang/snappy"

	"github.com/metabasenet/metabasenet/pkg/errors"
)

// Compress block-compresses src using the Snappy block format. The result is only
// ever smaller than src for already-compressible input; chunk payloads that
// don't shrink are still stored compressed, the chunk store cares only about
// the compression flag being set consistently.
func Compress(src []byte) []byte {
	return snappy.Encode(nil, src)
}

// Uncompress reverses Compress. It fails with ErrCorruptedInput if src is
// not a well-formed Snappy block.
func Uncompress(src []byte) ([]byte, error) {
	dst, err := snappy.Decode(nil, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCorruptedInput, err.Error())
	}
	return dst, nil
}
