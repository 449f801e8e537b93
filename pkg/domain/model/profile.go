package model

// Profile holds the immutable biographical reference facts about the
// patient. It is constructed once at startup and injected read-only into
// the components that interpolate response templates; nothing in the core
// ever mutates it.
type Profile struct {
	MaidenName  string
	MarriedName string
	Age         int

	// PrimaryAttachment is the person the patient is most emotionally
	// anchored to (her nephew, raised as a son).
	PrimaryAttachment      string
	DeceasedAttachments    []string
	ConflictedRelationship string

	CareerIdentity     string
	AchievementMarkers []string
	TraumaHistory      []string

	CurrentLocation      string
	DisplacementFrom     string
	DisplacementDuration string
	PropertiesOwned      []string
}

// DefaultProfile returns the reference profile for the current patient.
// The facts come from the clinical intake record.
func DefaultProfile() *Profile {
	return &Profile{
		MaidenName:  "Suhasini Abhyankar",
		MarriedName: "Anjali Pendarkar",
		Age:         75,

		PrimaryAttachment: "Pankaj",
		DeceasedAttachments: []string{
			"Mother (deeply loved)",
			"Elder brother (father figure to Pankaj)",
			"3 other siblings",
			"Husband (early death)",
		},
		ConflictedRelationship: "Sister",

		CareerIdentity: "Hospital Clerk at Vaishampa Hospital, Solapur",
		AchievementMarkers: []string{
			"College degree in 1960s-70s era",
			"Financial independence despite no husband/children",
			"Owns two properties in Solapur",
			"Career at Vaishampa Hospital",
		},
		TraumaHistory: []string{
			"Widowed shortly after marriage",
			"Burned legs (permanent trauma)",
			"Childless (Pankaj became substitute)",
			"Raised nephew after brother's death",
			"Lost 4 of 5 siblings",
		},

		CurrentLocation:      "Pune",
		DisplacementFrom:     "Solapur",
		DisplacementDuration: "Unknown to patient - believes \"just arrived yesterday\"",
		PropertiesOwned: []string{
			"House in Shivajinagar, Solapur",
			"House in Main City, Solapur",
		},
	}
}

// FirstName returns the patient's given name used in spoken responses
func (p *Profile) FirstName() string {
	for i, r := range p.MaidenName {
		if r == ' ' {
			return p.MaidenName[:i]
		}
	}
	return p.MaidenName
}
