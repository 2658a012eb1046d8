package domain

// ScenarioFile is the top-level shape of a scenario YAML file.
type ScenarioFile struct {
	Funding   *FundingOverrides `yaml:"funding,omitempty" json:"funding,omitempty"`
	Scenarios []NamedScenario   `yaml:"scenarios" json:"scenarios"`
}

// FundingConstants returns the default program parameters with the file's
// overrides applied.
func (f *ScenarioFile) FundingConstants() FundingConstants {
	if f == nil || f.Funding == nil {
		return DefaultFundingConstants()
	}
	return f.Funding.Apply(DefaultFundingConstants())
}

// FindScenario returns the scenario with the given name.
func (f *ScenarioFile) FindScenario(name string) (NamedScenario, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return NamedScenario{}, false
}

// ScenarioNames lists scenario names in file order.
func (f *ScenarioFile) ScenarioNames() []string {
	names := make([]string, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		names = append(names, s.Name)
	}
	return names
}
