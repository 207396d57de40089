package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/flow"
)

var (
	sessionID   string
	draftID     string
	archetypeID string
	petName     string
)

var listArchetypesCmd = &cobra.Command{
	Use:   "list-archetypes",
	Short: "List available pet types",
	RunE:  runListArchetypes,
}

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Start the pet creation wizard",
	Long:  `Create a new pet draft for the session's player, replacing any unfinished one.`,
	RunE:  runCreateDraft,
}

var resumeDraftCmd = &cobra.Command{
	Use:   "resume-draft",
	Short: "Show the session player's unfinished draft",
	RunE:  runResumeDraft,
}

var selectArchetypeCmd = &cobra.Command{
	Use:   "select-archetype",
	Short: "Choose the pet type of a draft",
	RunE:  runSelectArchetype,
}

var updateNameCmd = &cobra.Command{
	Use:   "update-name",
	Short: "Name the pet in a draft",
	Long:  `Set the pet's name. Names longer than 20 characters are truncated.`,
	RunE:  runUpdateName,
}

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Move the wizard to the next step",
	Long:  `Advance the wizard. On the last step this completes the draft and prints the styling token.`,
	RunE:  runAdvance,
}

var retreatCmd = &cobra.Command{
	Use:   "retreat",
	Short: "Move the wizard back one step",
	RunE:  runRetreat,
}

func init() {
	createDraftCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = createDraftCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init

	resumeDraftCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = resumeDraftCmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{selectArchetypeCmd, updateNameCmd, advanceCmd, retreatCmd} {
		cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
		_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	}

	selectArchetypeCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	selectArchetypeCmd.Flags().StringVar(&archetypeID, "archetype", "", "Pet type, e.g. fire-dragon (required)")
	_ = selectArchetypeCmd.MarkFlagRequired("draft-id")  // nolint:errcheck // safe to ignore in init
	_ = selectArchetypeCmd.MarkFlagRequired("archetype") // nolint:errcheck // safe to ignore in init

	updateNameCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	updateNameCmd.Flags().StringVar(&petName, "name", "", "Pet name (required)")
	_ = updateNameCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	_ = updateNameCmd.MarkFlagRequired("name")     // nolint:errcheck // safe to ignore in init

	advanceCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = advanceCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init

	retreatCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = retreatCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runListArchetypes(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListArchetypes(ctx, &apiv1alpha1.ListArchetypesRequest{})
	if err != nil {
		return callError("list archetypes", err)
	}

	fmt.Printf("Found %d pet types:\n\n", len(resp.Archetypes))
	for _, a := range resp.Archetypes {
		fmt.Printf("%s %s (%s) [%s]\n", a.Emoji, a.Name, a.ID, a.Rarity)
		fmt.Printf("   %s\n", a.Description)
		fmt.Printf("   Health %d · Energy %d · Intelligence %d\n\n", a.Health, a.Energy, a.Intelligence)
	}

	return nil
}

func runCreateDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateDraft(ctx, &apiv1alpha1.CreateDraftRequest{SessionID: sessionID})
	if err != nil {
		return callError("create draft", err)
	}

	fmt.Printf("✅ Pet draft created!\n\n")
	printDraft(resp.Draft)

	fmt.Printf("\n💡 Next steps:\n")
	fmt.Printf("1. Choose a type: petoverse client select-archetype --session-id %s --draft-id %s --archetype fire-dragon\n", sessionID, resp.Draft.ID)
	fmt.Printf("2. Advance: petoverse client advance --session-id %s --draft-id %s\n", sessionID, resp.Draft.ID)
	fmt.Printf("3. Name it: petoverse client update-name --session-id %s --draft-id %s --name \"Blaze\"\n", sessionID, resp.Draft.ID)

	return nil
}

func runResumeDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetPlayerDraft(ctx, &apiv1alpha1.GetPlayerDraftRequest{SessionID: sessionID})
	if err != nil {
		return callError("resume draft", err)
	}

	if !resp.Found {
		fmt.Printf("No draft in progress. Start one with: petoverse client create-draft --session-id %s\n", sessionID)
		return nil
	}

	fmt.Printf("📝 Draft in progress:\n\n")
	printDraft(resp.Draft)
	return nil
}

func runSelectArchetype(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SelectArchetype(ctx, &apiv1alpha1.SelectArchetypeRequest{
		SessionID:   sessionID,
		DraftID:     draftID,
		ArchetypeID: archetypeID,
	})
	if err != nil {
		return callError("select archetype", err)
	}

	fmt.Printf("✅ Pet type selected!\n\n")
	printDraft(resp.Draft)
	return nil
}

func runUpdateName(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateName(ctx, &apiv1alpha1.UpdateNameRequest{
		SessionID: sessionID,
		DraftID:   draftID,
		Name:      petName,
	})
	if err != nil {
		return callError("update name", err)
	}

	fmt.Printf("✅ Pet name updated!\n\n")
	printDraft(resp.Draft)
	return nil
}

func runAdvance(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AdvanceStep(ctx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
	if err != nil {
		return callError("advance", err)
	}

	switch {
	case resp.Completed:
		fmt.Printf("✅ Pet created! Continue on the %s screen.\n\n", resp.NextScreen)
		fmt.Printf("Token: %s\n", resp.TransferToken)
		fmt.Printf("\n💡 Next step:\n")
		fmt.Printf("petoverse client style --token %s\n", resp.TransferToken)
		return nil
	case !resp.Advanced:
		fmt.Printf("⚠️  Step %d is not complete yet\n\n", resp.Draft.Step)
		printDraft(resp.Draft)
		return nil
	}

	fmt.Printf("✅ Moved to step %d\n\n", resp.Draft.Step)
	printDraft(resp.Draft)

	if flow.At(int(resp.Draft.Step)).IsLast() {
		summary, err := client.GetSummary(ctx, &apiv1alpha1.GetSummaryRequest{SessionID: sessionID, DraftID: draftID})
		if err != nil {
			return callError("get summary", err)
		}
		a := summary.Summary.Archetype
		fmt.Printf("\nConfirm Your Pet:\n")
		fmt.Printf("  - Name: %s\n", summary.Summary.Name)
		fmt.Printf("  - Type: %s %s\n", a.Emoji, a.Name)
		fmt.Printf("  - Rarity: %s\n", a.Rarity)
	}

	return nil
}

func runRetreat(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RetreatStep(ctx, &apiv1alpha1.RetreatStepRequest{SessionID: sessionID, DraftID: draftID})
	if err != nil {
		return callError("retreat", err)
	}

	if resp.Exited {
		fmt.Printf("👋 Left the creation wizard\n")
		return nil
	}

	fmt.Printf("✅ Back to step %d\n\n", resp.Draft.Step)
	printDraft(resp.Draft)
	return nil
}
