// Package errors provides the structured error type used across the character sheet.
//
// Errors carry a Code, a message and optional metadata:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of an existing Error and defaults to Internal otherwise:
//
//	if err := store.Set(ctx, key, value); err != nil {
//	    return errors.Wrap(err, "failed to write roster")
//	}
//
// # Layer guidelines
//
// Normalization never returns errors: malformed entities are dropped or defaulted.
//
// Stores return NotFound for absent keys and ResourceExhausted when a value exceeds
// their quota. The roster repository logs every store failure and treats it as absent data.
//
// The orchestrator returns InvalidArgument for rejected editor input (built with
// ValidationBuilder), FailedPrecondition for illegal state transitions and incompatible
// import files, and NotFound for unknown characters or abilities.
//
// Store diagnostics return DataLoss for a roster that no longer decodes.
//
// The CLI maps codes to exit statuses with Code.ExitCode and prints GetMessage for
// codes that are UserFacing.
package errors
