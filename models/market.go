package models

import "github.com/uptrace/bun"

// InputKind is the kind of answer a market accepts.
type InputKind string

const (
	InputTeam          InputKind = "Team"
	InputCompetitor    InputKind = "Competitor"
	InputNumber        InputKind = "Number"
	InputSignedNumber  InputKind = "SignedNumber"
	InputNumberRange15 InputKind = "NumberRange15"
	InputThreeWay      InputKind = "ThreeWay"
)

// Valid reports whether k is one of the known input kinds.
func (k InputKind) Valid() bool {
	switch k {
	case InputTeam, InputCompetitor, InputNumber, InputSignedNumber, InputNumberRange15, InputThreeWay:
		return true
	}
	return false
}

// Market is one question attached to a match. InputKind is copied from the
// market type when the market is created so later catalog edits do not change
// what an existing market accepts.
type Market struct {
	bun.BaseModel `bun:"table:markets,alias:mk"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	MatchID      int64     `bun:"match_id,notnull" json:"matchID"`
	MarketTypeID int       `bun:"market_type_id,notnull" json:"marketTypeID"`
	Name         string    `bun:"name,notnull" json:"name"`
	InputKind    InputKind `bun:"input_kind,notnull" json:"inputKind"`
	Result       *string   `bun:"result" json:"result,omitempty"`

	Match *Match `bun:"rel:belongs-to,join:match_id=id" json:"-"`
}
