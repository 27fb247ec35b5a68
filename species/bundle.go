package species

// Bundle aggregates every reference record for one species, as returned by
// the species API and attached to classification results.
type Bundle struct {
	Name         string       `json:"name"`
	Info         Info         `json:"info"`
	HabitatClass string       `json:"habitat_class"`
	Conservation Conservation `json:"conservation"`
	Size         Size         `json:"size"`
	Distribution Distribution `json:"distribution"`
	FunFact      string       `json:"fun_fact,omitempty"`
}

// Detail collects all reference data for a species. Unknown names yield the
// per-table defaults.
func Detail(name string) Bundle {
	return Bundle{
		Name:         name,
		Info:         Lookup(name),
		HabitatClass: HabitatClass(name),
		Conservation: ConservationStatus(name),
		Size:         SizeData(name),
		Distribution: Range(name),
		FunFact:      FunFact(name),
	}
}
