package skill

import "github.com/delaneyj/skillparty/deptree"

// Attr names a derived or stored quantity of a skill. Change notifications
// carry one of these.
type Attr string

const (
	AttrPoolToolTip        Attr = "PoolToolTip"
	AttrDisplayPool        Attr = "DisplayPool"
	AttrPool               Attr = "Pool"
	AttrPoolModifiers      Attr = "PoolModifiers"
	AttrAttributeModifiers Attr = "AttributeModifiers"
	AttrWireRating         Attr = "WireRating"
	AttrLeveled            Attr = "Leveled"
	AttrRating             Attr = "Rating"
	AttrKarma              Attr = "Karma"
	AttrBaseUnlocked       Attr = "BaseUnlocked"
	AttrBase               Attr = "Base"
	AttrSpecialization     Attr = "Specialization"
	AttrUpgradeKarmaCost   Attr = "UpgradeKarmaCost"
	AttrCanUpgradeCareer   Attr = "CanUpgradeCareer"
	AttrEnabled            Attr = "Enabled"
	AttrKarmaSpecForced    Attr = "KarmaSpecForced"
)

func rating() *deptree.Node[Attr] {
	return deptree.N(AttrRating,
		deptree.N(AttrKarma),
		deptree.N(AttrBaseUnlocked,
			deptree.N(AttrBase),
		),
	)
}

// Dependencies is shared by every skill. Once some attribute changes, every
// attribute built on it must be announced too.
var Dependencies = deptree.Must(deptree.New(
	deptree.N(AttrPoolToolTip,
		deptree.N(AttrDisplayPool,
			deptree.N(AttrPool,
				deptree.N(AttrPoolModifiers),
				deptree.N(AttrAttributeModifiers),
				deptree.N(AttrWireRating),
				deptree.N(AttrLeveled, rating()),
			),
			deptree.N(AttrSpecialization, rating()),
		),
	),
	deptree.N(AttrCanUpgradeCareer,
		deptree.N(AttrUpgradeKarmaCost, rating()),
	),
	deptree.N(AttrEnabled),
	deptree.N(AttrKarmaSpecForced),
))

// Names the collaborators publish on their change streams.
const (
	CharacterKarma     = "Karma"
	CharacterQualities = "Qualities"
	GroupBase          = "Base"
	GroupKarma         = "Karma"
)
