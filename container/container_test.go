// File: container/container_test.go

package container_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/go-beamline/container"
)

// writeFixture builds a container file in a temp dir and returns its path.
func writeFixture(t *testing.T, name string, build func(t *testing.T, f *hdf5.File)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := hdf5.Create(path)
	require.NoError(t, err, "create fixture")
	build(t, f)
	require.NoError(t, f.Close(), "close fixture")
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := container.Open(filepath.Join(t.TempDir(), "absent.h5"))
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrNotFound)
}

// A stat failure that is not plain absence still classifies as an
// open error, so callers only ever see the two open-time error kinds.
func TestOpenInaccessiblePath(t *testing.T) {
	// A single path component over NAME_MAX fails stat with
	// "name too long", not "not exist".
	path := filepath.Join(t.TempDir(), strings.Repeat("a", 4096)+".h5")

	_, err := container.Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrOpen)
	assert.NotErrorIs(t, err, container.ErrNotFound)
}

func TestOpenUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.h5")
	require.NoError(t, os.WriteFile(path, []byte("this is not a container"), 0o644))

	_, err := container.Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrOpen)
}

func TestHasContainerExtension(t *testing.T) {
	assert.True(t, container.HasContainerExtension("run42.h5"))
	assert.True(t, container.HasContainerExtension("scan.NXS"))
	assert.False(t, container.HasContainerExtension("notes.txt"))
	assert.False(t, container.HasContainerExtension("archive.h5.bak"))
}

func TestReadDataset(t *testing.T) {
	path := writeFixture(t, "data.h5", func(t *testing.T, f *hdf5.File) {
		entry, err := f.Root().CreateGroup("entry")
		require.NoError(t, err)
		_, err = entry.CreateDataset("frames", [][]float64{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	arr, err := h.ReadDataset("/entry/frames")
	require.NoError(t, err)
	require.NotNil(t, arr)
	assert.Equal(t, []int{2, 3}, arr.Shape)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, arr.Data)
	assert.Equal(t, 6, arr.Size())
	assert.Equal(t, 5.0, arr.At(1, 1))
}

func TestReadDatasetAbsenceIsNotAnError(t *testing.T) {
	path := writeFixture(t, "sparse.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateGroup("entry")
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	// Missing path.
	arr, err := h.ReadDataset("/entry/missing")
	require.NoError(t, err)
	assert.Nil(t, arr)

	// Group at the path.
	arr, err = h.ReadDataset("/entry")
	require.NoError(t, err)
	assert.Nil(t, arr)

	// Missing intermediate group.
	arr, err = h.ReadDataset("/no/such/path")
	require.NoError(t, err)
	assert.Nil(t, arr)
}

func TestReadDatasetIntegerData(t *testing.T) {
	path := writeFixture(t, "ints.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("counts", []int32{7, 8, 9})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	arr, err := h.ReadDataset("/counts")
	require.NoError(t, err)
	require.NotNil(t, arr)
	assert.Equal(t, []float64{7, 8, 9}, arr.Data)
}

func TestReadText(t *testing.T) {
	path := writeFixture(t, "text.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("title", "XPCS run 42")
		require.NoError(t, err)
		_, err = f.Root().CreateDataset("numbers", []float64{1, 2})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	text, err := h.ReadText("/title")
	require.NoError(t, err)
	assert.Equal(t, []string{"XPCS run 42"}, text)

	// String datasets are invisible to the numeric read.
	arr, err := h.ReadDataset("/title")
	require.NoError(t, err)
	assert.Nil(t, arr)

	// Numeric datasets are invisible to the text read.
	text, err = h.ReadText("/numbers")
	require.NoError(t, err)
	assert.Nil(t, text)
}

func TestReadScalar(t *testing.T) {
	path := writeFixture(t, "scalar.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("wavelength", []float64{1.54})
		require.NoError(t, err)
		_, err = f.Root().CreateDataset("tau", []float64{0.1, 0.2, 0.4})
		require.NoError(t, err)
		_, err = f.Root().CreateDataset("sample", "aerogel")
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	// A one-element array surfaces as a bare float64.
	v, err := h.ReadScalar("/wavelength")
	require.NoError(t, err)
	assert.Equal(t, 1.54, v)

	// Multi-element arrays stay arrays.
	v, err = h.ReadScalar("/tau")
	require.NoError(t, err)
	arr, ok := v.(*container.Array)
	require.True(t, ok, "expected *Array, got %T", v)
	assert.Equal(t, []float64{0.1, 0.2, 0.4}, arr.Data)

	// Strings come back as text.
	v, err = h.ReadScalar("/sample")
	require.NoError(t, err)
	assert.Equal(t, "aerogel", v)

	// Absent stays absent.
	v, err = h.ReadScalar("/nothing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadAttribute(t *testing.T) {
	path := writeFixture(t, "attrs.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("detector", []float64{0},
			hdf5.WithAttribute("name", "eiger500k"),
			hdf5.WithAttribute("pixel_size", float64(7.5e-05)),
			hdf5.WithAttribute("count", int64(3)))
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	v, err := h.ReadAttribute("/detector", "name")
	require.NoError(t, err)
	assert.Equal(t, "eiger500k", v)

	v, err = h.ReadAttribute("/detector", "pixel_size")
	require.NoError(t, err)
	assert.InDelta(t, 7.5e-05, v, 1e-12)

	v, err = h.ReadAttribute("/detector", "count")
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)

	// Absent attribute and absent object both read as nil.
	v, err = h.ReadAttribute("/detector", "nope")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = h.ReadAttribute("/nothing", "name")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestExists(t *testing.T) {
	path := writeFixture(t, "exists.h5", func(t *testing.T, f *hdf5.File) {
		entry, err := f.Root().CreateGroup("entry")
		require.NoError(t, err)
		_, err = entry.CreateDataset("data", []float64{1})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	assert.True(t, h.Exists("/entry"))
	assert.True(t, h.Exists("/entry/data"))
	assert.False(t, h.Exists("/entry/other"))
	assert.False(t, h.Exists("/elsewhere"))
}

func TestCloseIsIdempotent(t *testing.T) {
	path := writeFixture(t, "close.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("data", []float64{1})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, err = h.ReadDataset("/data")
	assert.ErrorIs(t, err, container.ErrClosed)
	assert.False(t, h.Exists("/data"))
}

func TestListDatasetsAndGroups(t *testing.T) {
	path := writeFixture(t, "tree.h5", func(t *testing.T, f *hdf5.File) {
		entry, err := f.Root().CreateGroup("entry")
		require.NoError(t, err)
		inst, err := entry.CreateGroup("instrument")
		require.NoError(t, err)
		_, err = inst.CreateDataset("distance", []float64{5.0})
		require.NoError(t, err)
		_, err = entry.CreateDataset("data", [][]float64{{1, 2}, {3, 4}})
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	datasets, err := h.ListDatasets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/entry/instrument/distance", "/entry/data"}, datasets)

	groups, err := h.ListGroups()
	require.NoError(t, err)
	assert.Contains(t, groups, "/entry")
	assert.Contains(t, groups, "/entry/instrument")
}

func TestVisitDatasetsSkipsText(t *testing.T) {
	path := writeFixture(t, "visit.h5", func(t *testing.T, f *hdf5.File) {
		_, err := f.Root().CreateDataset("numbers", []float64{1, 2})
		require.NoError(t, err)
		_, err = f.Root().CreateDataset("label", "not numeric")
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	seen := map[string][]int{}
	err = h.VisitDatasets(func(p string, arr *container.Array) {
		seen[p] = arr.Shape
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"/numbers": {2}}, seen)
}

func TestVisitAttributes(t *testing.T) {
	path := writeFixture(t, "visitattrs.h5", func(t *testing.T, f *hdf5.File) {
		entry, err := f.Root().CreateGroup("entry")
		require.NoError(t, err)
		_, err = entry.CreateDataset("data", []float64{1},
			hdf5.WithAttribute("units", "counts"))
		require.NoError(t, err)
	})

	h, err := container.Open(path)
	require.NoError(t, err)
	defer h.Close()

	found := map[string]interface{}{}
	err = h.VisitAttributes(func(objPath, name string, value interface{}) {
		found[objPath+"@"+name] = value
	})
	require.NoError(t, err)
	assert.Equal(t, "counts", found["/entry/data@units"])
}

func TestNormalizeScalar(t *testing.T) {
	assert.Equal(t, "one", container.NormalizeScalar([]string{"one"}))
	assert.Equal(t, 1.5, container.NormalizeScalar([]float64{1.5}))
	assert.EqualValues(t, int64(4), container.NormalizeScalar([]int64{4}))
	assert.Equal(t, []float64{1, 2}, container.NormalizeScalar([]float64{1, 2}))
	assert.Equal(t, "plain", container.NormalizeScalar("plain"))
}
