// Package notify writes labelled operator messages for the kindlab CLI.
//
// Every message type has its own symbol and color: success (✔), error (✗), warning (⚠),
// info (ℹ), activity (►), generate (✚) and titles prefixed with an emoji. Colors are
// dropped automatically when the output is not a terminal.
package notify
