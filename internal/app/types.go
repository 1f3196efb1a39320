package app

// Survivor is a single attacker on the roster
type Survivor struct {
	Attack int `json:"attack" yaml:"attack"`
}

// PartyReport is the outcome of one defense calculation, shaped like the
// result panel: the defense that was entered, whether any party beats it,
// and if so the party's summed attack and its members.
type PartyReport struct {
	Defense     int        `json:"defense"`
	Found       bool       `json:"found"`
	PartyAttack int        `json:"partyAttack,omitempty"`
	Survivors   []Survivor `json:"survivors,omitempty"`
}

// QualifyingParty is one distinct qualifying sum and the first party that reached it
type QualifyingParty struct {
	PartyAttack int        `json:"partyAttack"`
	Survivors   []Survivor `json:"survivors"`
}
