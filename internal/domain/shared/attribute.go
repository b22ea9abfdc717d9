package shared

import "strings"

type Attribute string

// Attributes lists the six abilities in standard sheet order.
var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

var attributeNames = map[Attribute]string{
	AttributeStrength:     "Strength",
	AttributeDexterity:    "Dexterity",
	AttributeConstitution: "Constitution",
	AttributeIntelligence: "Intelligence",
	AttributeWisdom:       "Wisdom",
	AttributeCharisma:     "Charisma",
}

// FullName returns the display name for the attribute
func (a Attribute) FullName() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return string(a)
}

// ParseAttribute maps a stored key back to an Attribute, accepting both
// the short form ("Dex") and the full name ("Dexterity") case-insensitively.
func ParseAttribute(s string) Attribute {
	for _, attr := range Attributes {
		if strings.EqualFold(string(attr), s) || strings.EqualFold(attr.FullName(), s) {
			return attr
		}
	}
	return AttributeNone
}
