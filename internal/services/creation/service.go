package creation

//go:generate mockgen -destination=mock/mock_service.go -package=mockcreation . Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/clients/catalog"
	"github.com/KirkDiggler/character-forge-discord/internal/dice"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	characterRepo "github.com/KirkDiggler/character-forge-discord/internal/repositories/characters"
	draftRepo "github.com/KirkDiggler/character-forge-discord/internal/repositories/draft"
	"github.com/KirkDiggler/character-forge-discord/internal/uuid"
)

// Service drives the character creation wizard: one draft per owner and
// realm, staged selections with cascading invalidation, and a final
// transformation into a stored character.
type Service interface {
	// GetOrCreateDraft resumes the owner's active draft in the realm, or
	// starts a fresh one at the first stage
	GetOrCreateDraft(ctx context.Context, input *GetOrCreateDraftInput) (*GetOrCreateDraftOutput, error)

	// GetDraft retrieves a draft by ID
	GetDraft(ctx context.Context, draftID string) (*character.CharacterDraft, error)

	// UpdateDraft stages selections onto the draft, clearing dependent
	// fields when an upstream choice changes
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error)

	// DeleteDraft abandons a draft
	DeleteDraft(ctx context.Context, draftID string) error

	// Advance validates the current stage and moves to the next one on
	// the draft's path
	Advance(ctx context.Context, draftID string) (*NavigationOutput, error)

	// Retreat steps back along the path actually taken
	Retreat(ctx context.Context, draftID string) (*NavigationOutput, error)

	// JumpTo moves directly to a stage no further than one past the
	// furthest completed stage
	JumpTo(ctx context.Context, draftID string, stage character.Stage) (*NavigationOutput, error)

	// ListWorlds lists the playable worlds
	ListWorlds(ctx context.Context) ([]rulebook.World, error)

	// ListCampaigns lists a world's campaigns
	ListCampaigns(ctx context.Context, worldKey string) ([]rulebook.Campaign, error)

	// ListPremades lists the premade roster
	ListPremades(ctx context.Context) ([]rulebook.Premade, error)

	// ListClasses lists the playable classes
	ListClasses(ctx context.Context) ([]*rulebook.Class, error)

	// ListRaces lists the playable races
	ListRaces(ctx context.Context) ([]*rulebook.Race, error)

	// ListBackgrounds lists the available backgrounds
	ListBackgrounds(ctx context.Context) ([]rulebook.Background, error)

	// ListAlignments lists the alignment grid
	ListAlignments(ctx context.Context) ([]rulebook.Alignment, error)

	// SelectPremade copies a premade hero's record onto the draft
	SelectPremade(ctx context.Context, draftID, premadeKey string) (*character.CharacterDraft, error)

	// SetAbilityScore sets one point-buy score, enforcing bounds and the
	// shared budget
	SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*character.CharacterDraft, error)

	// AssignRoll binds a rolled or array value to an ability
	AssignRoll(ctx context.Context, input *AssignRollInput) (*character.CharacterDraft, error)

	// RollAbilities rolls six 4d6-drop-lowest totals for assignment,
	// replacing any previous rolls
	RollAbilities(ctx context.Context, draftID string) (*character.CharacterDraft, error)

	// GetFeatureOptions lists the class's level-1 feature decisions
	GetFeatureOptions(ctx context.Context, draftID string) ([]rulebook.FeatureChoice, error)

	// GetSkillOptions describes the class skill decision and the current
	// picks
	GetSkillOptions(ctx context.Context, draftID string) (*SkillOptionsOutput, error)

	// GetSpellOptions lists eligible cantrips and level-1 spells with
	// their quotas
	GetSpellOptions(ctx context.Context, draftID string) (*SpellOptionsOutput, error)

	// GetEquipmentOptions describes the starting-equipment decisions
	GetEquipmentOptions(ctx context.Context, draftID string) (*EquipmentOptionsOutput, error)

	// FinalizeDraft turns a review-complete draft into a stored
	// character and deletes the draft
	FinalizeDraft(ctx context.Context, draftID string) (*FinalizeDraftOutput, error)

	// GetCharacter retrieves a finalized character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ListCharacters lists an owner's finalized characters in a realm
	ListCharacters(ctx context.Context, ownerID, realmID string) ([]*character.Character, error)
}

// GetOrCreateDraftInput identifies the wizard session owner.
type GetOrCreateDraftInput struct {
	OwnerID string
	RealmID string
}

// GetOrCreateDraftOutput carries the active draft and whether it was
// resumed rather than created.
type GetOrCreateDraftOutput struct {
	Draft   *character.CharacterDraft
	Resumed bool
}

// UpdateDraftInput stages field changes for one draft.
type UpdateDraftInput struct {
	DraftID string
	Updates *character.DraftUpdates
}

// UpdateDraftOutput carries the saved draft and the fields the cascade
// cleared, if any.
type UpdateDraftOutput struct {
	Draft   *character.CharacterDraft
	Cleared []character.Field
}

// NavigationOutput carries the draft after a stage transition.
type NavigationOutput struct {
	Draft *character.CharacterDraft
}

// SetAbilityScoreInput sets one ability's point-buy value.
type SetAbilityScoreInput struct {
	DraftID string
	Ability shared.Attribute
	Score   int
}

// AssignRollInput binds one generated value to an ability.
type AssignRollInput struct {
	DraftID string
	Ability shared.Attribute
	RollID  string
}

// SkillOptionsOutput describes the skill stage: choose Count from
// Options, Selected being the current picks.
type SkillOptionsOutput struct {
	Count    int
	Options  []string
	Selected []string
}

// SpellOptionsOutput describes the spells stage: the eligible lists
// sorted by name, the quota per category, and the current picks.
type SpellOptionsOutput struct {
	Cantrips []*rulebook.SpellReference
	Spells   []*rulebook.SpellReference

	CantripQuota int
	SpellQuota   int

	SelectedCantrips []string
	SelectedSpells   []string
}

// EquipmentOptionsOutput describes the equipment stage: the class's
// choice groups, the items granted regardless of choice, and the
// branch currently selected per group.
type EquipmentOptionsOutput struct {
	Choices         []rulebook.EquipmentChoice
	Defaults        []rulebook.ItemRef
	BackgroundItems []rulebook.ItemRef
	Selected        map[string]int
}

// FinalizeDraftOutput carries the stored character.
type FinalizeDraftOutput struct {
	Character *character.Character
}

// service implements the Service interface
type service struct {
	draftRepo     draftRepo.Repository
	characterRepo characterRepo.Repository
	catalog       catalog.Client
	roller        dice.Roller
	uuidGenerator uuid.Generator
	eventBus      events.Bus
	log           *slog.Logger
}

// ServiceConfig holds configuration for the creation service
type ServiceConfig struct {
	DraftRepo     draftRepo.Repository     // Required
	CharacterRepo characterRepo.Repository // Required
	Catalog       catalog.Client           // Required
	Roller        dice.Roller              // Optional, random roller when nil
	UUIDGenerator uuid.Generator           // Optional, google uuid when nil
	EventBus      events.Bus               // Optional, events dropped when nil
	Logger        *slog.Logger             // Optional, slog default when nil
}

// NewService creates a new creation service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.DraftRepo == nil {
		panic("draft repository is required")
	}
	if cfg.CharacterRepo == nil {
		panic("character repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog client is required")
	}

	svc := &service{
		draftRepo:     cfg.DraftRepo,
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		eventBus:      cfg.EventBus,
		log:           cfg.Logger,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.log == nil {
		svc.log = slog.Default()
	}

	return svc
}

// emit publishes a creation event, dropping it with a warning when the
// bus is absent or failing. Event delivery never fails an operation.
func (s *service) emit(event *events.CreationEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		s.log.Warn("creation event dropped",
			"event", event.Type.String(),
			"error", err)
	}
}

// GetOrCreateDraft resumes the owner's active draft or creates one
func (s *service) GetOrCreateDraft(ctx context.Context, input *GetOrCreateDraftInput) (*GetOrCreateDraftOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if input.RealmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	existing, err := s.draftRepo.GetByOwnerAndRealm(ctx, input.OwnerID, input.RealmID)
	if err == nil {
		return &GetOrCreateDraftOutput{Draft: existing, Resumed: true}, nil
	}
	if !dnderr.IsNotFound(err) {
		return nil, dnderr.Wrap(err, "failed to look up active draft").
			WithMeta("owner_id", input.OwnerID).
			WithMeta("realm_id", input.RealmID)
	}

	draft := character.NewDraft(s.uuidGenerator.New(), input.OwnerID, input.RealmID, time.Now().UTC())
	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to create draft")
	}

	s.emit(events.NewCreationEvent(events.DraftCreated, draft))

	return &GetOrCreateDraftOutput{Draft: draft, Resumed: false}, nil
}

// GetDraft retrieves a draft by ID
func (s *service) GetDraft(ctx context.Context, draftID string) (*character.CharacterDraft, error) {
	if draftID == "" {
		return nil, dnderr.InvalidArgument("draft ID is required")
	}

	draft, err := s.draftRepo.Get(ctx, draftID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get draft '%s'", draftID)
	}
	return draft, nil
}

// UpdateDraft stages selections onto the draft and saves it
func (s *service) UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.Updates == nil {
		return nil, dnderr.InvalidArgument("updates are required")
	}

	draft, err := s.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if err := s.prepareUpdates(draft, input.Updates); err != nil {
		return nil, err
	}

	trigger := triggerField(draft, input.Updates)
	cleared := draft.ApplyUpdates(input.Updates)

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	if len(cleared) > 0 {
		names := make([]string, len(cleared))
		for i, f := range cleared {
			names[i] = string(f)
		}
		s.emit(events.NewCreationEvent(events.SelectionsInvalidated, draft).
			WithContext(events.ContextTriggerField, string(trigger)).
			WithContext(events.ContextClearedFields, names))
	}
	s.emit(events.NewCreationEvent(events.DraftUpdated, draft))

	return &UpdateDraftOutput{Draft: draft, Cleared: cleared}, nil
}

// prepareUpdates resolves catalog-backed side data for staged fields:
// changing race or subrace recomputes the racial bonus map so the
// draft always carries bonuses matching its keys.
func (s *service) prepareUpdates(draft *character.CharacterDraft, u *character.DraftUpdates) error {
	if u.RaceKey == nil && u.SubraceKey == nil {
		return nil
	}

	raceKey := draft.RaceKey
	if u.RaceKey != nil {
		raceKey = *u.RaceKey
	}
	if raceKey == "" {
		return nil
	}

	// A race change drops the old subrace unless the update names a new
	// one alongside it.
	subraceKey := ""
	if u.SubraceKey != nil {
		subraceKey = *u.SubraceKey
	} else if u.RaceKey == nil || *u.RaceKey == draft.RaceKey {
		subraceKey = draft.SubraceKey
	}

	race, err := s.catalog.GetRace(raceKey)
	if err != nil {
		return dnderr.Wrapf(err, "failed to get race '%s'", raceKey)
	}

	bonuses := make(map[shared.Attribute]int)
	for _, bonus := range race.AbilityBonuses {
		if bonus != nil {
			bonuses[bonus.Attribute] += bonus.Bonus
		}
	}
	if subraceKey != "" {
		subrace, ok := findSubrace(race, subraceKey)
		if !ok {
			return dnderr.Validationf("race '%s' has no subrace '%s'", raceKey, subraceKey).
				WithMeta("field", "subrace")
		}
		for _, bonus := range subrace.AbilityBonuses {
			if bonus != nil {
				bonuses[bonus.Attribute] += bonus.Bonus
			}
		}
	}

	u.RacialBonuses = bonuses
	return nil
}

func findSubrace(race *rulebook.Race, key string) (rulebook.Subrace, bool) {
	for _, subrace := range race.Subraces {
		if subrace.Key == key {
			return subrace, true
		}
	}
	return rulebook.Subrace{}, false
}

// triggerField names the first staged field that will cascade, for
// event context. Interactions stage one selection at a time, so ties
// are not worth attributing.
func triggerField(draft *character.CharacterDraft, u *character.DraftUpdates) character.Field {
	switch {
	case u.Path != nil && *u.Path != draft.Path:
		return character.FieldPath
	case u.ClassKey != nil && *u.ClassKey != draft.ClassKey:
		return character.FieldClass
	case u.RaceKey != nil && *u.RaceKey != draft.RaceKey:
		return character.FieldRace
	case u.AbilityMethod != nil && *u.AbilityMethod != draft.AbilityMethod:
		return character.FieldAbilityMethod
	default:
		return ""
	}
}

// DeleteDraft abandons a draft
func (s *service) DeleteDraft(ctx context.Context, draftID string) error {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}

	if err := s.draftRepo.Delete(ctx, draftID); err != nil {
		return dnderr.Wrapf(err, "failed to delete draft '%s'", draftID)
	}

	s.emit(events.NewCreationEvent(events.DraftDeleted, draft))
	return nil
}

// ListWorlds lists the playable worlds
func (s *service) ListWorlds(_ context.Context) ([]rulebook.World, error) {
	worlds, err := s.catalog.ListWorlds()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list worlds")
	}
	return worlds, nil
}

// ListCampaigns lists a world's campaigns
func (s *service) ListCampaigns(_ context.Context, worldKey string) ([]rulebook.Campaign, error) {
	if worldKey == "" {
		return nil, dnderr.InvalidArgument("world key is required")
	}
	campaigns, err := s.catalog.ListCampaigns(worldKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list campaigns for '%s'", worldKey)
	}
	return campaigns, nil
}

// ListPremades lists the premade roster
func (s *service) ListPremades(_ context.Context) ([]rulebook.Premade, error) {
	premades, err := s.catalog.ListPremades()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list premades")
	}
	return premades, nil
}

// ListClasses lists the playable classes
func (s *service) ListClasses(_ context.Context) ([]*rulebook.Class, error) {
	classes, err := s.catalog.ListClasses()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list classes")
	}
	return classes, nil
}

// ListRaces lists the playable races
func (s *service) ListRaces(_ context.Context) ([]*rulebook.Race, error) {
	races, err := s.catalog.ListRaces()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list races")
	}
	return races, nil
}

// ListBackgrounds lists the available backgrounds
func (s *service) ListBackgrounds(_ context.Context) ([]rulebook.Background, error) {
	backgrounds, err := s.catalog.ListBackgrounds()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list backgrounds")
	}
	return backgrounds, nil
}

// ListAlignments lists the alignment grid
func (s *service) ListAlignments(_ context.Context) ([]rulebook.Alignment, error) {
	alignments, err := s.catalog.ListAlignments()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list alignments")
	}
	return alignments, nil
}

// GetCharacter retrieves a finalized character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}
	char, err := s.characterRepo.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID)
	}
	return char, nil
}

// ListCharacters lists an owner's finalized characters in a realm
func (s *service) ListCharacters(ctx context.Context, ownerID, realmID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}
	chars, err := s.characterRepo.GetByOwnerAndRealm(ctx, ownerID, realmID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters").
			WithMeta("owner_id", ownerID).
			WithMeta("realm_id", realmID)
	}
	return chars, nil
}
