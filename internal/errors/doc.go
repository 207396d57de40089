// Package errors is the structured error type used across petoverse-api.
//
// Every layer returns *Error values carrying a Code, a user-facing Message and
// optional Meta. Handlers convert them to gRPC statuses with ToGRPCError and the
// CLI client converts them back with FromGRPCError, so the Message a player sees
// ("Invalid email or password.") survives the round trip unchanged.
//
// Creating and wrapping:
//
//	err := errors.NotFound("draft not found").WithMeta("draft_id", id)
//	if err := repo.Get(ctx, in); err != nil {
//	    return nil, errors.Wrap(err, "failed to get draft")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//	msg := errors.GetMessage(err)
//
// Collecting config/input problems:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.DraftRepo == nil {
//	    vb.RequiredField("DraftRepo")
//	}
//	return vb.Build()
//
// Layer guidelines:
//   - repositories return NotFound / InvalidArgument and wrap storage failures
//   - orchestrators validate input and carry the exact player-facing text
//   - handlers only translate, they never rewrite messages
package errors
