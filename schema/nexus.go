// File: schema/nexus.go

package schema

// NeXus is the probe table for generic NeXus files: facility-neutral
// entry/analysis layouts, including the ESRF numbered-entry variants.
var NeXus = &ProbeTable{
	Beamline: "NeXus",
	Facility: "Unknown",
	Fingerprints: []string{
		"/entry",
		"/entry_0000",
	},
	Tokens: []string{"nexus"},
	Data: []FieldPaths{
		{Field: "detector_data", Paths: []string{
			"/entry/data/data",
			"/entry/instrument/detector/data",
			"/entry_0000/instrument/detector/data",
			"/entry_0000/ESRF-ID02/eiger500k/data",
			"/entry/ESRF-ID02/eiger500k/data",
			"/data/data",
			"/detector/data",
		}},
		{Field: "g2_data", Paths: []string{
			"/entry/analysis/g2",
			"/entry_0000/analysis/g2",
			"/analysis/g2",
			"/g2",
		}},
		{Field: "tau_data", Paths: []string{
			"/entry/analysis/tau",
			"/entry_0000/analysis/tau",
			"/analysis/tau",
			"/tau",
		}},
		{Field: "intensity_data", Paths: []string{
			"/entry/analysis/intensity",
			"/entry_0000/analysis/intensity",
			"/analysis/intensity",
			"/intensity",
		}},
		{Field: "twotime_data", Paths: []string{
			"/entry/analysis/twotime",
			"/entry_0000/analysis/twotime",
			"/analysis/twotime",
			"/twotime",
		}},
		{Field: "q_map", Paths: []string{
			"/entry/analysis/q_map",
			"/entry_0000/analysis/q_map",
			"/analysis/q_map",
			"/q_map",
		}},
		{Field: "mask", Paths: []string{
			"/entry/analysis/mask",
			"/entry_0000/analysis/mask",
			"/analysis/mask",
			"/mask",
		}},
	},
	Metadata: []FieldPaths{
		{Field: "instrument", Paths: []string{
			"/entry/instrument/name",
			"/entry_0000/instrument/name",
		}},
		{Field: "sample_name", Paths: []string{
			"/entry/sample/name",
			"/entry_0000/sample/name",
		}},
		{Field: "start_time", Paths: []string{
			"/entry/start_time",
			"/entry_0000/start_time",
		}},
		{Field: "end_time", Paths: []string{
			"/entry/end_time",
			"/entry_0000/end_time",
		}},
	},
}
