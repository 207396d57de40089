package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
	"github.com/KirkDiggler/petoverse-api/internal/flow"
)

// call runs fn asynchronously and tags its outcome with seq. A call whose
// context was cancelled reports opCancelledMsg instead of its error.
func call(ctx context.Context, seq int, op string, fn func(context.Context) (any, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return opResultMsg{seq: seq, msg: opCancelledMsg{op: op}}
			}
			return opResultMsg{seq: seq, msg: opErrorMsg{op: op, err: err}}
		}
		return opResultMsg{seq: seq, msg: out}
	}
}

func loginFn(c Clients, email, password string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Auth.Login(ctx, &apiv1alpha1.LoginRequest{Email: email, Password: password})
		if err != nil {
			return nil, err
		}
		return loggedInMsg{session: resp.Session}, nil
	}
}

func signupFn(c Clients, email, password, confirm string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Auth.Signup(ctx, &apiv1alpha1.SignupRequest{
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
		})
		if err != nil {
			return nil, err
		}
		return signedUpMsg{message: resp.Message}, nil
	}
}

// startCreationFn loads the catalogs the creation and styling screens need and
// resumes the player's draft in progress, opening a fresh one when there is none
func startCreationFn(c Clients, sessionID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		archetypes, err := c.Pets.ListArchetypes(ctx, &apiv1alpha1.ListArchetypesRequest{})
		if err != nil {
			return nil, err
		}
		options, err := c.Pets.GetStyleOptions(ctx, &apiv1alpha1.GetStyleOptionsRequest{})
		if err != nil {
			return nil, err
		}
		toys, err := c.World.ListToys(ctx, &apiv1alpha1.ListToysRequest{})
		if err != nil {
			return nil, err
		}
		current, err := c.Pets.GetPlayerDraft(ctx, &apiv1alpha1.GetPlayerDraftRequest{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		d := current.Draft
		if !current.Found {
			created, err := c.Pets.CreateDraft(ctx, &apiv1alpha1.CreateDraftRequest{SessionID: sessionID})
			if err != nil {
				return nil, err
			}
			d = created.Draft
		}

		var summary *apiv1alpha1.DraftSummary
		if current.Found && flow.At(int(d.Step)).IsLast() {
			resp, err := c.Pets.GetSummary(ctx, &apiv1alpha1.GetSummaryRequest{SessionID: sessionID, DraftID: d.ID})
			if err != nil {
				return nil, err
			}
			summary = &resp.Summary
		}

		return creationReadyMsg{
			draft:       d,
			resumed:     current.Found,
			summary:     summary,
			archetypes:  archetypes.Archetypes,
			palettes:    options.Palettes,
			accessories: options.Accessories,
			sizeStep:    options.SizeStep,
			toys:        toys.Toys,
		}, nil
	}
}

// advanceFn applies an optional edit and then advances the wizard. Reaching
// the confirmation step also fetches the summary; completing the wizard opens
// the styling screen with the transfer token.
func advanceFn(c Clients, sessionID, draftID string, edit func(context.Context) error) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		if edit != nil {
			if err := edit(ctx); err != nil {
				return nil, err
			}
		}

		adv, err := c.Pets.AdvanceStep(ctx, &apiv1alpha1.AdvanceStepRequest{SessionID: sessionID, DraftID: draftID})
		if err != nil {
			return nil, err
		}

		if adv.Completed {
			opened, err := c.Pets.OpenStyling(ctx, &apiv1alpha1.OpenStylingRequest{Token: adv.TransferToken})
			if err != nil {
				return nil, err
			}
			return stylingOpenedMsg{
				token:     opened.Token,
				name:      opened.Name,
				archetype: opened.Archetype,
				cosmetics: opened.Cosmetics,
			}, nil
		}

		out := stepMsg{draft: adv.Draft, advanced: adv.Advanced}
		if flow.At(int(adv.Draft.Step)).IsLast() {
			summary, err := c.Pets.GetSummary(ctx, &apiv1alpha1.GetSummaryRequest{SessionID: sessionID, DraftID: draftID})
			if err != nil {
				return nil, err
			}
			out.summary = &summary.Summary
		}
		return out, nil
	}
}

func selectArchetypeEdit(c Clients, sessionID, draftID, archetypeID string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := c.Pets.SelectArchetype(ctx, &apiv1alpha1.SelectArchetypeRequest{
			SessionID:   sessionID,
			DraftID:     draftID,
			ArchetypeID: archetypeID,
		})
		return err
	}
}

func updateNameEdit(c Clients, sessionID, draftID, name string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := c.Pets.UpdateName(ctx, &apiv1alpha1.UpdateNameRequest{SessionID: sessionID, DraftID: draftID, Name: name})
		return err
	}
}

func retreatFn(c Clients, sessionID, draftID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.RetreatStep(ctx, &apiv1alpha1.RetreatStepRequest{SessionID: sessionID, DraftID: draftID})
		if err != nil {
			return nil, err
		}
		if resp.Exited {
			if _, err := c.Pets.DeleteDraft(ctx, &apiv1alpha1.DeleteDraftRequest{SessionID: sessionID, DraftID: draftID}); err != nil {
				return nil, err
			}
		}
		return retreatedMsg{draft: resp.Draft, exited: resp.Exited}, nil
	}
}

func setPrimaryFn(c Clients, token, paletteID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.SetPrimaryColor(ctx, &apiv1alpha1.SetPrimaryColorRequest{Token: token, PaletteID: paletteID})
		if err != nil {
			return nil, err
		}
		return cosmeticsMsg{token: resp.Token, cosmetics: resp.Cosmetics}, nil
	}
}

func setSecondaryFn(c Clients, token, paletteID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.SetSecondaryColor(ctx, &apiv1alpha1.SetSecondaryColorRequest{Token: token, PaletteID: paletteID})
		if err != nil {
			return nil, err
		}
		return cosmeticsMsg{token: resp.Token, cosmetics: resp.Cosmetics}, nil
	}
}

func setSizeFn(c Clients, token string, size float64) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.SetSize(ctx, &apiv1alpha1.SetSizeRequest{Token: token, Size: size})
		if err != nil {
			return nil, err
		}
		return cosmeticsMsg{token: resp.Token, cosmetics: resp.Cosmetics}, nil
	}
}

func toggleAccessoryFn(c Clients, token, accessoryID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.ToggleAccessory(ctx, &apiv1alpha1.ToggleAccessoryRequest{Token: token, AccessoryID: accessoryID})
		if err != nil {
			return nil, err
		}
		return cosmeticsMsg{token: resp.Token, cosmetics: resp.Cosmetics}, nil
	}
}

func savePetFn(c Clients, sessionID, token string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.Pets.SavePet(ctx, &apiv1alpha1.SavePetRequest{SessionID: sessionID, Token: token})
		if err != nil {
			return nil, err
		}
		return petSavedMsg{petToken: resp.PetToken}, nil
	}
}

func historyFn(c Clients, sessionID, petID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.GetHistory(ctx, &apiv1alpha1.GetHistoryRequest{SessionID: sessionID, PetID: petID})
		if err != nil {
			return nil, err
		}
		return historyMsg{messages: resp.Messages}, nil
	}
}

func sendMessageFn(c Clients, sessionID, petID, text string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.SendMessage(ctx, &apiv1alpha1.SendMessageRequest{SessionID: sessionID, PetID: petID, Text: text})
		if err != nil {
			return nil, err
		}
		return chatMsg{message: resp.Message, reply: resp.Reply}, nil
	}
}

func playWithToyFn(c Clients, sessionID, petID, toyID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.PlayWithToy(ctx, &apiv1alpha1.PlayWithToyRequest{SessionID: sessionID, PetID: petID, ToyID: toyID})
		if err != nil {
			return nil, err
		}
		return toyPlayedMsg{message: resp.Message, pet: resp.Pet}, nil
	}
}

func trainFn(c Clients, sessionID, petID, command string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.TrainPet(ctx, &apiv1alpha1.TrainPetRequest{SessionID: sessionID, PetID: petID, Command: command})
		if err != nil {
			return nil, err
		}
		return trainedMsg{command: command, learned: resp.Learned, pet: resp.Pet}, nil
	}
}

func rewardsFn(c Clients, sessionID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.ListRewards(ctx, &apiv1alpha1.ListRewardsRequest{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		return rewardsMsg{rewards: resp.Rewards}, nil
	}
}

func claimFn(c Clients, sessionID, rewardID string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		resp, err := c.World.ClaimReward(ctx, &apiv1alpha1.ClaimRewardRequest{SessionID: sessionID, RewardID: rewardID})
		if err != nil {
			return nil, err
		}
		return claimedMsg{reward: resp.Reward, found: resp.Found, alreadyClaimed: resp.AlreadyClaimed}, nil
	}
}

func worldFn(c Clients) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		nodes, err := c.World.ListNodes(ctx, &apiv1alpha1.ListNodesRequest{})
		if err != nil {
			return nil, err
		}
		stars, err := c.World.GetStarField(ctx, &apiv1alpha1.GetStarFieldRequest{})
		if err != nil {
			return nil, err
		}
		return worldMsg{nodes: nodes.Nodes, stars: stars.Stars}, nil
	}
}
