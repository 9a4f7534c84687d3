// File: reader/reader_test.go

package reader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/go-beamline/container"
	"greg-hacke/go-beamline/reader"
)

// quiet disables the sweep so tests see exactly the probe-table fields.
var quiet = reader.Options{Sweep: false}

// p10Fixture builds a file in the DESY P10 layout. The detector data
// is present both at the preferred path and at a later candidate with
// different values, so tests can observe which one won.
func p10Fixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "p10_run.h5")
	f, err := hdf5.Create(path)
	require.NoError(t, err)

	entry, err := f.Root().CreateGroup("entry")
	require.NoError(t, err)

	data, err := entry.CreateGroup("data")
	require.NoError(t, err)
	_, err = data.CreateDataset("data", [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = data.CreateDataset("pilatus_data", [][]float64{{9, 9}, {9, 9}})
	require.NoError(t, err)

	result, err := entry.CreateGroup("result")
	require.NoError(t, err)
	_, err = result.CreateDataset("g2", [][]float64{{1.5, 1.4}, {1.3, 1.2}})
	require.NoError(t, err)
	_, err = result.CreateDataset("tau", []float64{0.001, 0.002, 0.004})
	require.NoError(t, err)
	_, err = result.CreateDataset("twotime", [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	inst, err := entry.CreateGroup("instrument")
	require.NoError(t, err)
	source, err := inst.CreateGroup("source")
	require.NoError(t, err)
	_, err = source.CreateDataset("wavelength", []float64{1.54})
	require.NoError(t, err)

	sample, err := entry.CreateGroup("sample")
	require.NoError(t, err)
	_, err = sample.CreateDataset("name", "aerogel")
	require.NoError(t, err)

	require.NoError(t, f.Close())
	return path
}

// nexusFixture builds a minimal generic NeXus file.
func nexusFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.nxs")
	f, err := hdf5.Create(path)
	require.NoError(t, err)

	entry, err := f.Root().CreateGroup("entry")
	require.NoError(t, err)
	data, err := entry.CreateGroup("data")
	require.NoError(t, err)
	_, err = data.CreateDataset("data", [][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	require.NoError(t, f.Close())
	return path
}

// plainFixture builds a container with no recognizable layout.
func plainFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plain.h5")
	f, err := hdf5.Create(path)
	require.NoError(t, err)
	_, err = f.Root().CreateDataset("values", []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return path
}

func TestDetectFormatOrder(t *testing.T) {
	tests := []struct {
		name    string
		fixture func(*testing.T) string
		want    string
	}{
		{"p10 beats the generics", p10Fixture, "DESY P10"},
		{"nexus beats plain hdf5", nexusFixture, "NeXus"},
		{"plain file falls through to hdf5", plainFixture, "HDF5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := reader.DetectFormat(tt.fixture(t))
			require.NotNil(t, format)
			assert.Equal(t, tt.want, format.Name)
		})
	}
}

func TestDetectFormatMissingFile(t *testing.T) {
	assert.Nil(t, reader.DetectFormat(filepath.Join(t.TempDir(), "absent.h5")))
}

func TestDetectFormatUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.h5")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))
	assert.Nil(t, reader.DetectFormat(path))
}

func TestDetectionSurvivesPanickingPredicate(t *testing.T) {
	formats := append([]reader.Format{{
		Name:    "broken",
		CanRead: func(string) bool { panic("detector crashed") },
		New: func(path string, opts reader.Options) (reader.Reader, error) {
			t.Fatal("broken format must never be constructed")
			return nil, nil
		},
	}}, reader.Formats()...)

	r, err := reader.OpenWith(plainFixture(t), formats, quiet)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "HDF5", r.Beamline())
}

func TestFirstCandidateWins(t *testing.T) {
	r, err := reader.NewDESYP10Reader(p10Fixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	// /entry/data/data is probed before /entry/data/pilatus_data, so
	// the preferred values win even though both datasets exist.
	arr := r.Record().Data("detector_data")
	require.NotNil(t, arr)
	assert.Equal(t, []float64{1, 2, 3, 4}, arr.Data)
}

func TestP10Extraction(t *testing.T) {
	r, err := reader.NewDESYP10Reader(p10Fixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	rec := r.Record()
	assert.ElementsMatch(t,
		[]string{"detector_data", "g2_data", "tau_data", "twotime_data"},
		rec.DataKeys())

	// One-element numeric datasets surface as bare scalars.
	wavelength, ok := rec.Metadata("wavelength")
	require.True(t, ok)
	assert.Equal(t, 1.54, wavelength)

	assert.Equal(t, "aerogel", rec.MetadataString("sample_name", ""))

	// Identity is stamped even though the file never states it.
	assert.Equal(t, "DESY P10", rec.MetadataString("beamline", ""))
	assert.Equal(t, "DESY", rec.MetadataString("facility", ""))
	assert.Equal(t, "DESY P10", r.Beamline())
}

func TestXpcsDataKeys(t *testing.T) {
	r, err := reader.NewDESYP10Reader(p10Fixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	xpcs := r.XpcsData()
	keys := make([]string, 0, len(xpcs))
	for k := range xpcs {
		keys = append(keys, k)
	}
	// Only the fields present in the file; no nil placeholders.
	assert.ElementsMatch(t, []string{"g2", "tau", "twotime"}, keys)
	assert.Equal(t, []float64{0.001, 0.002, 0.004}, xpcs["tau"].Data)
}

func TestSaxsDataPriority(t *testing.T) {
	// The fixture has no dedicated SAXS dataset, so the detector frames
	// stand in.
	r, err := reader.NewDESYP10Reader(p10Fixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	saxs := r.SaxsData()
	require.NotNil(t, saxs)
	assert.Equal(t, []float64{1, 2, 3, 4}, saxs.Data)
}

func TestNeXusReaderStampsFileFormat(t *testing.T) {
	r, err := reader.NewNeXusReader(nexusFixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	assert.Equal(t, "NeXus", r.Record().MetadataString("file_format", ""))
	assert.Equal(t, "NeXus", r.Beamline())
	require.NotNil(t, r.SaxsData())

	// The generic NeXus table carries no facility identity.
	_, ok := r.Record().Metadata("facility")
	assert.False(t, ok)
}

func TestSweepFlattensPaths(t *testing.T) {
	path := p10Fixture(t)
	r, err := reader.NewHDF5Reader(path, reader.Options{Sweep: true})
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	rec := r.Record()
	assert.True(t, rec.HasData("entry_data_data"))
	assert.True(t, rec.HasData("entry_result_g2"))
	assert.True(t, rec.HasData("entry_instrument_source_wavelength"))
	// The structured field names never appear in a sweep-only record.
	assert.False(t, rec.HasData("detector_data"))
}

func TestSweepOffLeavesGenericRecordEmpty(t *testing.T) {
	r, err := reader.NewHDF5Reader(plainFixture(t), quiet)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Extract())

	assert.Empty(t, r.Record().DataKeys())
	assert.Empty(t, r.Record().MetadataKeys())
}

func TestReaderMissingFile(t *testing.T) {
	_, err := reader.NewHDF5Reader(filepath.Join(t.TempDir(), "absent.h5"), quiet)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrNotFound)
}

func TestOpenNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.h5")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))

	_, err := reader.Open(path, quiet)
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrNoMatchingSchema)
}

func TestFileInfo(t *testing.T) {
	path := plainFixture(t)
	r, err := reader.NewHDF5Reader(path, quiet)
	require.NoError(t, err)
	defer r.Close()

	info, err := r.FileInfo()
	require.NoError(t, err)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, "plain.h5", info.Name)
	assert.Greater(t, info.Size, int64(0))
	assert.False(t, info.ModTime.IsZero())
}

func TestCloseIsIdempotent(t *testing.T) {
	r, err := reader.NewHDF5Reader(plainFixture(t), quiet)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}
