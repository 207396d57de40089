package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(v1alpha1.CodecName)
	require.NotNil(t, codec)

	data, err := codec.Marshal(&v1alpha1.SelectArchetypeRequest{SessionID: "sess_1", DraftID: "draft_1", ArchetypeID: "fire-dragon"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"sess_1","draft_id":"draft_1","archetype_id":"fire-dragon"}`, string(data))

	var got v1alpha1.SelectArchetypeRequest
	require.NoError(t, codec.Unmarshal(data, &got))
	assert.Equal(t, "fire-dragon", got.ArchetypeID)
}

func TestServiceDescriptors(t *testing.T) {
	assert.Equal(t, "petoverse.v1alpha1.AuthService", v1alpha1.AuthService_ServiceDesc.ServiceName)
	assert.Len(t, v1alpha1.AuthService_ServiceDesc.Methods, 4)
	assert.Len(t, v1alpha1.PetService_ServiceDesc.Methods, 19)
	assert.Len(t, v1alpha1.WorldService_ServiceDesc.Methods, 11)
}
