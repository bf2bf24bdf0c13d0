/*
Copyright 2024 The Universal Ink Library Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package codec

import (
	"bytes"
	"compress/flate"
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/Wacom-Developer/universal-ink-library/uimerr"
)

// compressPayload applies the transform named by c to plain, used by
// the encoder just before a chunk's bytes are written.
func compressPayload(plain []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return plain, nil
	case CompressionZIP:
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.BestCompression)
		if err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: flate writer init failed")
		}
		if _, err := w.Write(plain); err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: flate compression failed")
		}
		if err := w.Close(); err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: flate compression failed")
		}
		return buf.Bytes(), nil
	case CompressionLZMA:
		var buf bytes.Buffer
		w, err := lzma.NewWriter(&buf)
		if err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: lzma writer init failed")
		}
		if _, err := w.Write(plain); err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: lzma compression failed")
		}
		if err := w.Close(); err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: lzma compression failed")
		}
		return buf.Bytes(), nil
	}
	return nil, uimerr.New(uimerr.KindFormat, "codec: unknown compression tag")
}

// decompressPayload reverses compressPayload.
func decompressPayload(raw []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return raw, nil
	case CompressionZIP:
		r := flate.NewReader(bytes.NewReader(raw))
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: flate decompression failed")
		}
		return out, nil
	case CompressionLZMA:
		r, err := lzma.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: lzma reader init failed")
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, uimerr.Wrap(err, uimerr.KindFormat, "", "codec: lzma decompression failed")
		}
		return out, nil
	}
	return nil, uimerr.New(uimerr.KindFormat, "codec: unknown compression tag")
}
