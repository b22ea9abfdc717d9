package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	mockcreation "github.com/KirkDiggler/character-forge-discord/internal/services/creation/mock"
)

func newCharacterFixture(t *testing.T) (*CharacterHandler, *mockcreation.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mockcreation.NewMockService(ctrl)

	handler := NewCharacterHandler(&CharacterHandlerConfig{
		Service:   service,
		CustomIDs: core.NewCustomIDBuilder("character"),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return handler, service
}

func testCharacter(id, name string) *character.Character {
	return &character.Character{
		ID:               id,
		OwnerID:          testUserID,
		RealmID:          testGuildID,
		Name:             name,
		Level:            1,
		ClassKey:         "fighter",
		ClassName:        "Fighter",
		RaceKey:          "dwarf",
		RaceName:         "Dwarf",
		BackgroundKey:    "soldier",
		AlignmentKey:     "lawful-good",
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(17),
			shared.AttributeDexterity:    character.NewAbilityScore(13),
			shared.AttributeConstitution: character.NewAbilityScore(16),
			shared.AttributeIntelligence: character.NewAbilityScore(8),
			shared.AttributeWisdom:       character.NewAbilityScore(12),
			shared.AttributeCharisma:     character.NewAbilityScore(10),
		},
		Skills:           []string{"athletics", "intimidation"},
		HitPoints:        13,
		MaxHitPoints:     13,
		ArmorClass:       16,
		Initiative:       1,
		ProficiencyBonus: 2,
		Speed:            25,
	}
}

func TestHandleList_EmptyRoster(t *testing.T) {
	handler, service := newCharacterFixture(t)

	service.EXPECT().ListCharacters(gomock.Any(), testUserID, testGuildID).Return(nil, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "list", nil)
	result, err := handler.HandleList(ctx)

	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	assert.Contains(t, result.Response.Content, "/character create")
}

func TestHandleList_ShowsCharactersWithSheetButtons(t *testing.T) {
	handler, service := newCharacterFixture(t)

	chars := []*character.Character{
		testCharacter("char_1", "Tordek"),
		testCharacter("char_2", "Mialee"),
	}
	service.EXPECT().ListCharacters(gomock.Any(), testUserID, testGuildID).Return(chars, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "list", nil)
	result, err := handler.HandleList(ctx)

	require.NoError(t, err)
	require.Len(t, result.Response.Embeds, 1)
	embed := result.Response.Embeds[0]
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Tordek", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "Level 1 Dwarf Fighter")

	ids := componentCustomIDs(result.Response.Components)
	assert.Contains(t, ids, "character:sheet:char_1")
	assert.Contains(t, ids, "character:sheet:char_2")
}

func TestHandleList_CapsSheetButtons(t *testing.T) {
	handler, service := newCharacterFixture(t)

	chars := make([]*character.Character, 8)
	for i := range chars {
		chars[i] = testCharacter(string(rune('a'+i)), "Hero")
	}
	service.EXPECT().ListCharacters(gomock.Any(), testUserID, testGuildID).Return(chars, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "list", nil)
	result, err := handler.HandleList(ctx)

	require.NoError(t, err)
	assert.Len(t, componentCustomIDs(result.Response.Components), listSheetButtons)
}

func TestHandleShow_RendersSheet(t *testing.T) {
	handler, service := newCharacterFixture(t)

	char := testCharacter("char_1", "Tordek")
	char.Features = map[string]string{"fighting-style": "defense"}
	char.Spellcasting = &character.SpellcastingInfo{
		Ability:  shared.AttributeIntelligence,
		Cantrips: []string{"light"},
	}
	service.EXPECT().GetCharacter(gomock.Any(), "char_1").Return(char, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "show", map[string]any{"id": "char_1"})
	result, err := handler.HandleShow(ctx)

	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	require.Len(t, result.Response.Embeds, 1)

	embed := result.Response.Embeds[0]
	assert.Equal(t, "Tordek", embed.Title)
	assert.Contains(t, embed.Description, "Level 1 Dwarf Fighter")

	require.GreaterOrEqual(t, len(embed.Fields), 7)
	assert.Equal(t, "Strength", embed.Fields[0].Name)
	assert.Equal(t, "17 (+3)", embed.Fields[0].Value)

	var combat string
	for _, field := range embed.Fields {
		if field.Name == "Combat" {
			combat = field.Value
		}
	}
	assert.Contains(t, combat, "HP 13/13")
	assert.Contains(t, combat, "AC 16")
}

func TestHandleShow_MissingID(t *testing.T) {
	handler, _ := newCharacterFixture(t)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "show", nil)
	_, err := handler.HandleShow(ctx)

	requireHandlerCode(t, err, core.ErrorCodeBadRequest)
}

func TestHandleShow_NotFound(t *testing.T) {
	handler, service := newCharacterFixture(t)

	service.EXPECT().
		GetCharacter(gomock.Any(), "char_9").
		Return(nil, dnderr.NotFoundf("character char_9 not found"))

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "show", map[string]any{"id": "char_9"})
	_, err := handler.HandleShow(ctx)

	requireHandlerCode(t, err, core.ErrorCodeNotFound)
}

func TestHandleShow_OtherRealmReadsAsNotFound(t *testing.T) {
	handler, service := newCharacterFixture(t)

	char := testCharacter("char_1", "Tordek")
	char.OwnerID = "someone-else"
	char.RealmID = "another-guild"
	service.EXPECT().GetCharacter(gomock.Any(), "char_1").Return(char, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "show", map[string]any{"id": "char_1"})
	_, err := handler.HandleShow(ctx)

	requireHandlerCode(t, err, core.ErrorCodeNotFound)
}

func TestHandleShow_SameRealmIsVisible(t *testing.T) {
	handler, service := newCharacterFixture(t)

	char := testCharacter("char_1", "Tordek")
	char.OwnerID = "someone-else"
	service.EXPECT().GetCharacter(gomock.Any(), "char_1").Return(char, nil)

	ctx := core.NewTestCommandContext(testUserID, testGuildID, "character", "show", map[string]any{"id": "char_1"})
	result, err := handler.HandleShow(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Tordek", result.Response.Embeds[0].Title)
}

func TestHandleSheetButton_OpensFreshEphemeralSheet(t *testing.T) {
	handler, service := newCharacterFixture(t)

	service.EXPECT().GetCharacter(gomock.Any(), "char_1").Return(testCharacter("char_1", "Tordek"), nil)

	ctx := core.NewTestComponentContext(testUserID, testGuildID, "character:sheet:char_1")
	result, err := handler.HandleSheetButton(ctx)

	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	assert.False(t, result.Response.Update, "the sheet opens as a new message, not an edit")
	assert.Equal(t, "Tordek", result.Response.Embeds[0].Title)
}

func TestHandleSheetButton_ExpiredID(t *testing.T) {
	handler, _ := newCharacterFixture(t)

	ctx := core.NewTestComponentContext(testUserID, testGuildID, "character:sheet")
	_, err := handler.HandleSheetButton(ctx)

	requireHandlerCode(t, err, core.ErrorCodeBadRequest)
}
