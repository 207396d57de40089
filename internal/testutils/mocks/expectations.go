// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
	creationdraft "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft"
	draftrepomock "github.com/KirkDiggler/petoverse-api/internal/repositories/creation_draft/mock"
	"github.com/KirkDiggler/petoverse-api/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/petoverse-api/internal/repositories/session/mock"
)

// ExpectSessionGet sets up a mock expectation for loading a session.
// ctx may be a context or a gomock matcher.
func ExpectSessionGet(
	ctx any, mockRepo *sessionmock.MockRepository,
	sessionID string, sess *petoverse.Session, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, session.GetInput{ID: sessionID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, session.GetInput{ID: sessionID}).
		Return(&session.GetOutput{Session: sess}, nil)
}

// ExpectDraftGet sets up a mock expectation for getting a draft from repository
func ExpectDraftGet(
	ctx any, mockRepo *draftrepomock.MockRepository,
	draftID string, draft *petoverse.CreationDraft, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, creationdraft.GetInput{ID: draftID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, creationdraft.GetInput{ID: draftID}).
		Return(&creationdraft.GetOutput{Draft: draft}, nil)
}

// ExpectDraftUpdate sets up a mock expectation for updating a draft.
// The stored draft is echoed back unchanged.
func ExpectDraftUpdate(ctx any, mockRepo *draftrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input creationdraft.UpdateInput) (*creationdraft.UpdateOutput, error) {
			return &creationdraft.UpdateOutput{Draft: input.Draft}, nil
		})
}

// ExpectDraftDelete sets up a mock expectation for deleting a draft
func ExpectDraftDelete(ctx any, mockRepo *draftrepomock.MockRepository, draftID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Delete(ctx, creationdraft.DeleteInput{ID: draftID}).
		Return(&creationdraft.DeleteOutput{}, err)
}
