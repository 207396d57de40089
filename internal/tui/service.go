package tui

import (
	"google.golang.org/grpc"

	apiv1alpha1 "github.com/KirkDiggler/petoverse-api/internal/api/petoverse/v1alpha1"
)

// Clients holds the service clients the terminal client talks to
type Clients struct {
	Auth  apiv1alpha1.AuthServiceClient
	Pets  apiv1alpha1.PetServiceClient
	World apiv1alpha1.WorldServiceClient
}

// NewClients creates clients for every Petoverse service on cc
func NewClients(cc grpc.ClientConnInterface) Clients {
	return Clients{
		Auth:  apiv1alpha1.NewAuthServiceClient(cc),
		Pets:  apiv1alpha1.NewPetServiceClient(cc),
		World: apiv1alpha1.NewWorldServiceClient(cc),
	}
}
