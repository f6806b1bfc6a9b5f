package models

// Parameter identifies a monitored constituent (e.g. "ENT", "Cu").
// Using a named type keeps parameter names from being confused with
// arbitrary strings in filter plumbing; a typo'd parameter fails fast in
// validation instead of silently matching nothing.
type Parameter string

// ParameterGroup is the fixed TMDL taxonomy a parameter belongs to.
type ParameterGroup string

// Known TMDL parameter groups
const (
	GroupMetals     ParameterGroup = "Metals"
	GroupPathogens  ParameterGroup = "Pathogens"
	GroupNutrients  ParameterGroup = "Nutrients"
	GroupPesticides ParameterGroup = "Pesticides"
	GroupSediment   ParameterGroup = "Sediment"
)

// parameterGroups maps each constituent to its TMDL group.
// Parameters absent from this table have no TMDL group and the TMDL
// filter is a no-op for them.
var parameterGroups = map[Parameter]ParameterGroup{
	"ENT":       GroupPathogens,
	"FC":        GroupPathogens,
	"EC":        GroupPathogens,
	"Cu":        GroupMetals,
	"Pb":        GroupMetals,
	"Zn":        GroupMetals,
	"Ni":        GroupMetals,
	"TN":        GroupNutrients,
	"TP":        GroupNutrients,
	"NO3":       GroupNutrients,
	"NH3":       GroupNutrients,
	"Chlordane": GroupPesticides,
	"Diazinon":  GroupPesticides,
	"TSS":       GroupSediment,
	"Turbidity": GroupSediment,
}

// Group returns the TMDL parameter group for p.
func (p Parameter) Group() (ParameterGroup, bool) {
	g, ok := parameterGroups[p]
	return g, ok
}

// nutrientParameters is the fixed nutrient set handled separately when
// building the parameter choice list.
var nutrientParameters = map[Parameter]bool{
	"TN":  true,
	"TP":  true,
	"NO3": true,
	"NH3": true,
}

// IsNutrient reports whether p belongs to the fixed nutrient set.
func (p Parameter) IsNutrient() bool {
	return nutrientParameters[p]
}

// NutrientParameters returns the fixed nutrient set in stable order.
func NutrientParameters() []Parameter {
	return []Parameter{"NH3", "NO3", "TN", "TP"}
}
