package models

import (
	id "tpb/pkg/domain"
)

// State is reference data for a U.S. state.
type State struct {
	ID           id.StateID `json:"state_id"`
	Name         string     `json:"state_name"`
	Abbreviation string     `json:"abbreviation"`
}

// Town is reference data for a municipality and the legislative districts it
// sits in. District identifiers are empty when unknown.
type Town struct {
	ID                    id.TownID  `json:"town_id"`
	Name                  string     `json:"town_name"`
	StateID               id.StateID `json:"state_id"`
	StateName             string     `json:"state_name"`
	StateAbbreviation     string     `json:"abbreviation"`
	CongressionalDistrict string     `json:"us_congress_district,omitempty"`
	StateSenateDistrict   string     `json:"state_senate_district,omitempty"`
	StateHouseDistrict    string     `json:"state_house_district,omitempty"`
}

// DisplayName renders "Town, ST".
func (t *Town) DisplayName() string {
	return t.Name + ", " + t.StateAbbreviation
}

// DistrictAddresses builds the division addresses of every district the town
// belongs to, skipping districts that are not recorded.
func (t *Town) DistrictAddresses() []DivisionAddress {
	addrs := make([]DivisionAddress, 0, 3)
	for _, d := range []struct {
		level    DivisionLevel
		district string
	}{
		{LevelCongressional, t.CongressionalDistrict},
		{LevelStateUpper, t.StateSenateDistrict},
		{LevelStateLower, t.StateHouseDistrict},
	} {
		addr, err := NewDistrictAddress(d.level, t.StateAbbreviation, d.district)
		if err != nil {
			continue
		}
		addrs = append(addrs, addr)
	}
	return addrs
}
