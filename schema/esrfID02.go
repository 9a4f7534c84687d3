// File: schema/esrfID02.go

package schema

// ESRFID02 is the probe table for the ESRF ID02 TRUSAXS beamline
// (Eiger detector). ID02 files carry an extra per-detector path level,
// so most fields probe one more candidate than P10.
var ESRFID02 = &ProbeTable{
	Beamline: "ESRF ID02",
	Facility: "ESRF",
	Fingerprints: []string{
		"/entry/data/eiger_data",
		"/entry/instrument/detector/eiger",
		"/detector/data",
		"/correlation/g2",
	},
	Tokens: []string{"id02", "esrf"},
	Data: []FieldPaths{
		{Field: "detector_data", Paths: []string{
			"/entry/data/data",
			"/entry/instrument/detector/data",
			"/entry/data/eiger_data",
			"/data/data",
			"/detector/data",
		}},
		{Field: "saxs_data", Paths: []string{
			"/entry/data/saxs",
			"/entry/result/saxs",
			"/saxs/data",
			"/saxs",
		}},
		{Field: "xpcs_data", Paths: []string{
			"/entry/data/xpcs",
			"/entry/result/xpcs",
			"/xpcs/data",
			"/xpcs",
		}},
		{Field: "g2_data", Paths: []string{
			"/entry/result/g2",
			"/entry/data/g2",
			"/g2/data",
			"/g2",
			"/correlation/g2",
		}},
		{Field: "tau_data", Paths: []string{
			"/entry/result/tau",
			"/entry/data/tau",
			"/tau/data",
			"/tau",
			"/correlation/tau",
		}},
		{Field: "twotime_data", Paths: []string{
			"/entry/result/twotime",
			"/entry/data/twotime",
			"/twotime/data",
			"/twotime",
			"/correlation/twotime",
		}},
		{Field: "intensity_data", Paths: []string{
			"/entry/result/intensity",
			"/entry/data/intensity",
			"/intensity/data",
			"/intensity",
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
			"/detector/beam_center_x",
		}},
		{Field: "beam_center_y", Paths: []string{
			"/entry/instrument/detector/beam_center_y",
			"/entry/data/beam_center_y",
			"/beam_center_y",
			"/detector/beam_center_y",
		}},
		{Field: "detector_distance", Paths: []string{
			"/entry/instrument/detector/distance",
			"/entry/data/detector_distance",
			"/detector_distance",
			"/detector/distance",
		}},
		{Field: "wavelength", Paths: []string{
			"/entry/instrument/source/wavelength",
			"/entry/data/wavelength",
			"/wavelength",
			"/source/wavelength",
		}},
		{Field: "energy", Paths: []string{
			"/entry/instrument/source/energy",
			"/entry/data/energy",
			"/energy",
			"/source/energy",
		}},
		{Field: "pixel_size_x", Paths: []string{
			"/entry/instrument/detector/x_pixel_size",
			"/entry/data/pixel_size_x",
			"/pixel_size_x",
			"/detector/x_pixel_size",
		}},
		{Field: "pixel_size_y", Paths: []string{
			"/entry/instrument/detector/y_pixel_size",
			"/entry/data/pixel_size_y",
			"/pixel_size_y",
			"/detector/y_pixel_size",
		}},
		{Field: "exposure_time", Paths: []string{
			"/entry/instrument/detector/count_time",
			"/entry/data/exposure_time",
			"/exposure_time",
			"/detector/count_time",
		}},
		{Field: "frame_time", Paths: []string{
			"/entry/instrument/detector/frame_time",
			"/entry/data/frame_time",
			"/frame_time",
			"/detector/frame_time",
		}},
		{Field: "sample_name", Paths: []string{
			"/entry/sample/name",
			"/entry/data/sample_name",
			"/sample_name",
			"/sample/name",
		}},
		{Field: "sample_temperature", Paths: []string{
			"/entry/sample/temperature",
			"/entry/data/sample_temperature",
			"/sample_temperature",
			"/sample/temperature",
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
