// File: schema/esrfID10.go

package schema

// ESRFID10 is the probe table for the ESRF ID10 coherent scattering
// beamline (Eiger 4M detector). Layout follows the ID02 pattern with
// the detector-specific paths swapped for the 4M module.
var ESRFID10 = &ProbeTable{
	Beamline: "ESRF ID10",
	Facility: "ESRF",
	Fingerprints: []string{
		"/entry/data/eiger4m_data",
		"/entry/instrument/eiger4m",
		"/entry/instrument/detector/eiger4m",
	},
	Tokens: []string{"id10", "esrf"},
	Data: []FieldPaths{
		{Field: "detector_data", Paths: []string{
			"/entry/data/data",
			"/entry/instrument/detector/data",
			"/entry/data/eiger4m_data",
			"/data/data",
		}},
		{Field: "saxs_data", Paths: []string{
			"/entry/data/saxs",
			"/entry/result/saxs",
			"/saxs/data",
		}},
		{Field: "xpcs_data", Paths: []string{
			"/entry/data/xpcs",
			"/entry/result/xpcs",
			"/xpcs/data",
		}},
		{Field: "g2_data", Paths: []string{
			"/entry/result/g2",
			"/entry/data/g2",
			"/g2/data",
			"/g2",
		}},
		{Field: "tau_data", Paths: []string{
			"/entry/result/tau",
			"/entry/data/tau",
			"/tau/data",
			"/tau",
		}},
		{Field: "twotime_data", Paths: []string{
			"/entry/result/twotime",
			"/entry/data/twotime",
			"/twotime/data",
			"/twotime",
		}},
		{Field: "intensity_data", Paths: []string{
			"/entry/result/intensity",
			"/entry/data/intensity",
			"/intensity",
		}},
		{Field: "q_map", Paths: []string{
			"/entry/result/q_map",
			"/entry/data/q_map",
			"/q_map",
		}},
		{Field: "mask", Paths: []string{
			"/entry/data/mask",
			"/entry/instrument/detector/mask",
			"/mask",
		}},
	},
	Metadata: []FieldPaths{
		{Field: "beam_center_x", Paths: []string{
			"/entry/instrument/detector/beam_center_x",
			"/entry/data/beam_center_x",
			"/beam_center_x",
		}},
		{Field: "beam_center_y", Paths: []string{
			"/entry/instrument/detector/beam_center_y",
			"/entry/data/beam_center_y",
			"/beam_center_y",
		}},
		{Field: "detector_distance", Paths: []string{
			"/entry/instrument/detector/distance",
			"/entry/data/detector_distance",
			"/detector_distance",
		}},
		{Field: "wavelength", Paths: []string{
			"/entry/instrument/source/wavelength",
			"/entry/data/wavelength",
			"/wavelength",
		}},
		{Field: "energy", Paths: []string{
			"/entry/instrument/source/energy",
			"/entry/data/energy",
			"/energy",
		}},
		{Field: "pixel_size_x", Paths: []string{
			"/entry/instrument/detector/x_pixel_size",
			"/entry/data/pixel_size_x",
			"/pixel_size_x",
		}},
		{Field: "pixel_size_y", Paths: []string{
			"/entry/instrument/detector/y_pixel_size",
			"/entry/data/pixel_size_y",
			"/pixel_size_y",
		}},
		{Field: "exposure_time", Paths: []string{
			"/entry/instrument/detector/count_time",
			"/entry/data/exposure_time",
			"/exposure_time",
		}},
		{Field: "sample_name", Paths: []string{
			"/entry/sample/name",
			"/entry/data/sample_name",
			"/sample_name",
		}},
		{Field: "sample_temperature", Paths: []string{
			"/entry/sample/temperature",
			"/entry/data/sample_temperature",
			"/sample_temperature",
		}},
		{Field: "start_time", Paths: []string{
			"/entry/start_time",
			"/start_time",
		}},
		{Field: "end_time", Paths: []string{
			"/entry/end_time",
			"/end_time",
		}},
	},
}
