package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

var (
	styleToken     string
	primaryColor   string
	secondaryColor string
	petSize        float64
	toggles        []string
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Change a pet's colors, size or accessories",
	Long: `Apply styling edits to the pet carried by a styling token.
Each edit returns a new token; the final one is printed for save-pet.`,
	RunE: runStyle,
}

var savePetCmd = &cobra.Command{
	Use:   "save-pet",
	Short: "Save a styled pet and print its pet token",
	RunE:  runSavePet,
}

func init() {
	styleCmd.Flags().StringVar(&styleToken, "token", "", "Styling token from advance (required)")
	styleCmd.Flags().StringVar(&primaryColor, "primary", "", "Primary palette ID")
	styleCmd.Flags().StringVar(&secondaryColor, "secondary", "", "Secondary palette ID")
	styleCmd.Flags().Float64Var(&petSize, "size", 1.0, "Pet size (0.5 - 1.5)")
	styleCmd.Flags().StringSliceVar(&toggles, "toggle", nil, "Accessory IDs to toggle")
	_ = styleCmd.MarkFlagRequired("token") // nolint:errcheck // safe to ignore in init

	savePetCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	savePetCmd.Flags().StringVar(&styleToken, "token", "", "Styling token (required)")
	_ = savePetCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	_ = savePetCmd.MarkFlagRequired("token")      // nolint:errcheck // safe to ignore in init
}

func runStyle(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opened, err := client.OpenStyling(ctx, &apiv1alpha1.OpenStylingRequest{Token: styleToken})
	if err != nil {
		return callError("open styling", err)
	}

	token := opened.Token
	cosmetics := opened.Cosmetics

	if primaryColor != "" {
		resp, err := client.SetPrimaryColor(ctx, &apiv1alpha1.SetPrimaryColorRequest{Token: token, PaletteID: primaryColor})
		if err != nil {
			return callError("set primary color", err)
		}
		token, cosmetics = resp.Token, resp.Cosmetics
	}

	if secondaryColor != "" {
		resp, err := client.SetSecondaryColor(ctx, &apiv1alpha1.SetSecondaryColorRequest{Token: token, PaletteID: secondaryColor})
		if err != nil {
			return callError("set secondary color", err)
		}
		token, cosmetics = resp.Token, resp.Cosmetics
	}

	if cmd.Flags().Changed("size") {
		resp, err := client.SetSize(ctx, &apiv1alpha1.SetSizeRequest{Token: token, Size: petSize})
		if err != nil {
			return callError("set size", err)
		}
		token, cosmetics = resp.Token, resp.Cosmetics
	}

	for _, id := range toggles {
		resp, err := client.ToggleAccessory(ctx, &apiv1alpha1.ToggleAccessoryRequest{Token: token, AccessoryID: id})
		if err != nil {
			return callError("toggle accessory", err)
		}
		token, cosmetics = resp.Token, resp.Cosmetics
	}

	fmt.Printf("✨ Styling %s the %s\n\n", opened.Name, opened.Archetype.Name)
	printCosmetics(cosmetics)
	fmt.Printf("\nToken: %s\n", token)

	fmt.Printf("\n💡 Next step:\n")
	fmt.Printf("petoverse client save-pet --session-id <session> --token %s\n", token)

	return nil
}

func runSavePet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SavePet(ctx, &apiv1alpha1.SavePetRequest{
		SessionID: sessionID,
		Token:     styleToken,
	})
	if err != nil {
		return callError("save pet", err)
	}

	pt := resp.PetToken
	fmt.Printf("✅ Pet saved successfully!\n\n")
	fmt.Printf("Pet ID: %s\n", pt.Pet.ID)
	fmt.Printf("Name: %s\n", pt.Pet.Name)
	fmt.Printf("Type: %s %s (%s)\n", pt.Archetype.Emoji, pt.Archetype.Name, pt.Archetype.Rarity)
	fmt.Printf("Level: %d (%d/%d XP)\n", pt.Pet.Stats.Level, pt.Pet.Stats.Experience, pt.Pet.Stats.MaxExperience)
	fmt.Printf("Stats:\n")
	fmt.Printf("  - Intelligence: %d\n", pt.Pet.Stats.Intelligence)
	fmt.Printf("  - Creativity: %d\n", pt.Pet.Stats.Creativity)
	fmt.Printf("  - Loyalty: %d\n", pt.Pet.Stats.Loyalty)
	fmt.Printf("  - Energy: %d\n", pt.Pet.Stats.Energy)
	fmt.Printf("  - Happiness: %d\n", pt.Pet.Stats.Happiness)
	fmt.Printf("Appearance:\n")
	printCosmetics(pt.Pet.Cosmetics)
	if len(pt.UniqueTraits) > 0 {
		fmt.Printf("Traits: %v\n", pt.UniqueTraits)
	}

	fmt.Printf("\n💡 Next step:\n")
	fmt.Printf("petoverse client chat --session-id %s --pet-id %s --text \"hello\"\n", sessionID, pt.Pet.ID)

	return nil
}
