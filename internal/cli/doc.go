// Package cli provides the interactive pin-vault command-line client.
//
// It drives the credential vault, the reveal controller and the backup
// services through a small REPL. Typical flow: enroll a device PIN, save a
// few credentials, configure the backup server address, and use reveal to
// show a PIN for a few seconds after confirming the device PIN.
//
// Key commands:
//   - add / list / update / remove — manage saved PINs
//   - reveal — time-bounded display of one PIN value
//   - setconn / setpin — backup server address and device PIN enrollment
//   - export / import / backups / health — backup server operations
//
// The REPL is started via CLI.Run(ctx), which blocks until the user exits.
package cli
