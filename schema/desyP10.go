// File: schema/desyP10.go

package schema

// DESYP10 is the probe table for the DESY P10 coherence beamline
// (Pilatus detector). The paths are the wire contract with the P10
// acquisition software and must not be reordered.
var DESYP10 = &ProbeTable{
	Beamline: "DESY P10",
	Facility: "DESY",
	Fingerprints: []string{
		"/entry/data/pilatus_data",
		"/entry/instrument/detector/pilatus",
		"/data/data",
	},
	Tokens: []string{"p10", "desy"},
	Data: []FieldPaths{
		{Field: "detector_data", Paths: []string{
			"/entry/data/data",
			"/entry/instrument/detector/data",
			"/entry/data/pilatus_data",
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
		{Field: "q_map", Paths: []string{
			"/entry/result/q_map",
			"/entry/data/q_map",
			"/q_map/data",
			"/q_map",
		}},
		{Field: "mask", Paths: []string{
			"/entry/data/mask",
			"/entry/instrument/detector/mask",
			"/mask/data",
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
			"/entry/data/start_time",
			"/start_time",
		}},
		{Field: "end_time", Paths: []string{
			"/entry/end_time",
			"/entry/data/end_time",
			"/end_time",
		}},
	},
}
