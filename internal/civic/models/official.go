package models

import (
	id "tpb/pkg/domain"
)

// Statewide titles, in the order the clerk presents them.
const (
	TitleGovernor           = "Governor"
	TitleUSSenator          = "U.S. Senator"
	TitleLieutenantGovernor = "Lieutenant Governor"
	TitleAttorneyGeneral    = "Attorney General"
)

// StatewideTitles are the offices looked up for every location in a state.
var StatewideTitles = []string{
	TitleGovernor,
	TitleUSSenator,
	TitleLieutenantGovernor,
	TitleAttorneyGeneral,
}

// Official is an elected officeholder. Contact fields are empty when unknown.
type Official struct {
	ID        id.OfficialID   `json:"official_id"`
	FullName  string          `json:"full_name"`
	Title     string          `json:"title"`
	Party     string          `json:"party"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Website   string          `json:"website,omitempty"`
	Division  DivisionAddress `json:"-"`
	StateCode string          `json:"state_code,omitempty"`
	IsCurrent bool            `json:"is_current"`
}

// TitleRank orders statewide officials: Governor, then U.S. Senator, then
// Lieutenant Governor, then everything else.
func TitleRank(title string) int {
	switch title {
	case TitleGovernor:
		return 1
	case TitleUSSenator:
		return 2
	case TitleLieutenantGovernor:
		return 3
	default:
		return 4
	}
}
