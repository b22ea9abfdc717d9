package character

// Stage identifies one step of the creation sequence. Stages are not
// densely numbered; position comes from the per-path sequence, never
// from arithmetic on the identifier.
type Stage string

const (
	StageWorld         Stage = "world"
	StageCampaign      Stage = "campaign"
	StageCharacterType Stage = "character-type"
	StagePremadeSelect Stage = "premade-select"
	StageClass         Stage = "class"
	StageIdentity      Stage = "identity"
	StageAbilities     Stage = "abilities"
	StageClassFeatures Stage = "class-features"
	StageSpells        Stage = "spells"
	StageSkills        Stage = "skills"
	StageEquipment     Stage = "equipment"
	StageAlignment     Stage = "alignment"
	StageReview        Stage = "review"
)

// Path is the branch taken at the character-type stage.
type Path string

const (
	PathUnset   Path = ""
	PathCustom  Path = "custom"
	PathPremade Path = "premade"
)

var customStages = []Stage{
	StageWorld,
	StageCampaign,
	StageCharacterType,
	StageClass,
	StageIdentity,
	StageAbilities,
	StageClassFeatures,
	StageSpells,
	StageSkills,
	StageEquipment,
	StageAlignment,
	StageReview,
}

var premadeStages = []Stage{
	StageWorld,
	StageCampaign,
	StageCharacterType,
	StagePremadeSelect,
	StageReview,
}

// StageSequence returns the ordered stages for a path. Before a path is
// chosen only the shared prefix through character-type is reachable, so
// the custom ordering serves as the default.
func StageSequence(path Path) []Stage {
	if path == PathPremade {
		return premadeStages
	}
	return customStages
}

// StageIndex returns a stage's position on the given path, or -1 when
// the stage is not part of that path.
func StageIndex(path Path, stage Stage) int {
	for i, s := range StageSequence(path) {
		if s == stage {
			return i
		}
	}
	return -1
}

// NextStage returns the stage after the given one on the path, and
// false at the end of the sequence. Review is terminal on both paths.
func NextStage(path Path, stage Stage) (Stage, bool) {
	seq := StageSequence(path)
	idx := StageIndex(path, stage)
	if idx < 0 || idx+1 >= len(seq) {
		return stage, false
	}
	return seq[idx+1], true
}

// PrevStage returns the stage before the given one on the path, and
// false at the start of the sequence. Retreat follows the path actually
// taken: on the premade path review steps back to premade-select.
func PrevStage(path Path, stage Stage) (Stage, bool) {
	seq := StageSequence(path)
	idx := StageIndex(path, stage)
	if idx <= 0 {
		return stage, false
	}
	return seq[idx-1], true
}

// StageTitle returns the display heading for a stage.
func StageTitle(stage Stage) string {
	switch stage {
	case StageWorld:
		return "Choose Your World"
	case StageCampaign:
		return "Choose Your Campaign"
	case StageCharacterType:
		return "Custom or Premade?"
	case StagePremadeSelect:
		return "Pick a Premade Hero"
	case StageClass:
		return "Choose Your Class"
	case StageIdentity:
		return "Who Are You?"
	case StageAbilities:
		return "Determine Ability Scores"
	case StageClassFeatures:
		return "Choose Class Features"
	case StageSpells:
		return "Choose Your Spells"
	case StageSkills:
		return "Choose Your Skills"
	case StageEquipment:
		return "Choose Your Equipment"
	case StageAlignment:
		return "Choose Your Alignment"
	case StageReview:
		return "Review & Finish"
	default:
		return string(stage)
	}
}
