// File: maskio/maskio.go

package maskio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec names a mask on-disk encoding.
type Codec string

const (
	CodecHDF5  Codec = "hdf5"
	CodecNPY   Codec = "npy"
	CodecImage Codec = "image"
	CodecText  Codec = "text"
)

// CodecForPath maps a file extension to its codec.
func CodecForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h5", ".hdf5", ".nxs":
		return CodecHDF5, nil
	case ".npy":
		return CodecNPY, nil
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return CodecImage, nil
	case ".txt", ".dat":
		return CodecText, nil
	default:
		return "", fmt.Errorf("no mask codec for %q", filepath.Ext(path))
	}
}

// Save writes the mask to path, choosing the codec by extension.
// Unrecognized extensions are written as NPY; Load stays strict, so
// such files must be read back with LoadAs.
func Save(m *Mask, path string) error {
	codec, err := CodecForPath(path)
	if err != nil {
		codec = CodecNPY
	}
	return SaveAs(m, path, codec)
}

// SaveAs writes the mask with an explicit codec, ignoring the
// extension.
func SaveAs(m *Mask, path string, codec Codec) error {
	switch codec {
	case CodecHDF5:
		return saveHDF5(m, path)
	case CodecNPY:
		return saveNPY(m, path)
	case CodecImage:
		return saveImage(m, path)
	case CodecText:
		return saveText(m, path)
	default:
		return fmt.Errorf("unknown mask codec %q", codec)
	}
}

// Load reads a mask from path, choosing the codec by extension.
func Load(path string) (*Mask, error) {
	codec, err := CodecForPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, codec)
}

// LoadAs reads a mask with an explicit codec, ignoring the extension.
func LoadAs(path string, codec Codec) (*Mask, error) {
	switch codec {
	case CodecHDF5:
		return loadHDF5(path)
	case CodecNPY:
		return loadNPY(path)
	case CodecImage:
		return loadImage(path)
	case CodecText:
		return loadText(path)
	default:
		return nil, fmt.Errorf("unknown mask codec %q", codec)
	}
}
