// Package ui provides the interactive surfaces of pioport.
//
// Three components live here:
//
//   - Selector: the classic prompt loop. Prints the device listing
//     (preferred usbserial entries first, original index numbers kept),
//     offers a default on blank input, and re-enumerates on invalid input.
//   - RunPicker: a Bubble Tea full-screen picker over the same candidate
//     list, launched by the --tui flag. Supports re-enumeration, fuzzy
//     filtering, and manual path entry.
//   - AskYesNo: the y/yes confirmation used before creating a new override
//     config file.
//
// Prompts and listings write directly to stdout; status and error text of
// the surrounding flow goes through internal/logging instead.
package ui
