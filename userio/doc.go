// Package userio reads primitive values from a human operator through
// blocking dialogs, with simple format-error tracking.
//
// # Overview
//
// An IO shows a prompt through a dialog.Prompter, converts the answer to the
// requested type and records whether the conversion worked. Bad input never
// panics and never returns an error: the numeric reads return 0, InputChar
// returns a space, and the failure is kept for the caller to inspect.
//
// # Polling style
//
// Read a value, then check Error before trusting it:
//
//	age := userio.InputInt("Age")
//	if userio.Error() {
//	    userio.Message(userio.ErrorInput() + ": " + userio.ErrorMsg())
//	}
//
// The package-level functions share one IO, so this style is only safe for a
// single caller at a time.
//
// # Result style
//
// The Read methods return the outcome of the call itself and suit concurrent
// code and tests:
//
//	io := userio.New(dialog.NewScript("42"))
//	r := io.ReadInt(ctx, "Age")
//	if !r.OK {
//	    return r.Err()
//	}
//
// The Parse functions do the conversion alone, with no dialog at all.
//
// # Cancellation
//
// A cancelled dialog reads as empty text, so a cancelled InputInt fails with
// ErrorInput() == "". Result.Cancelled tells the two apart for callers that care.
package userio
