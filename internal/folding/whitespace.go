// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// gapState records where the folder is relative to the words of its input.
type gapState uint8

const (
	// beforeText holds until the first non-space rune.
	beforeText gapState = iota

	// inText holds while copying non-space runes.
	inText

	// inGap holds after whitespace that follows text. The gap is written as a
	// single space only once more text follows it.
	inGap
)

// WhitespaceFolder normalizes the spacing of headwords and search queries so
// that "  jan  pona " and "jan pona" compare equal. Leading and trailing
// whitespace is dropped and every run of Unicode whitespace between words,
// ideographic spaces included, becomes one ASCII space. Invalid UTF-8 is
// replaced with utf8.RuneError.
type WhitespaceFolder struct {
	state gapState
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			if w.state == inText {
				w.state = inGap
			}
			nSrc += size
			continue
		}

		// utf8.RuneError is three bytes wide even when it replaces a single
		// invalid byte.
		need := utf8.RuneLen(r)
		if w.state == inGap {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if w.state == inGap {
			dst[nDst] = ' '
			nDst++
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.state = inText
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	w.state = beforeText
}
