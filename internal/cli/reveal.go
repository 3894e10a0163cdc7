// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/manifoldco/promptui"

	"github.com/MKhiriev/go-pin-vault/internal/reveal"
	"github.com/MKhiriev/go-pin-vault/models"
)

const (
	progressBarWidth = 20

	// maskWipeWidth must cover the longest countdown frame, so the wipe
	// leaves no trailing characters behind.
	maskWipeWidth = 40
)

// clipboardWriteAll is a test seam for clipboard.WriteAll; headless CI has
// no clipboard to write to.
var clipboardWriteAll = clipboard.WriteAll

// promptSelect is a test seam over the interactive item picker.
var promptSelect = func(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}

	_, picked, err := prompt.Run()
	return picked, err
}

// revealSession is the listener-side state of one reveal: the value being
// rendered into countdown frames and whether it sits on the clipboard.
// The reveal controller serializes all callbacks touching it.
type revealSession struct {
	pin    string
	copied bool
}

func (c *CLI) revealItem(ctx context.Context, args []string) {
	name := strings.Join(args, " ")
	if name == "" {
		picked, err := c.pickItem("Reveal which PIN?")
		switch {
		case errors.Is(err, errVaultEmpty):
			c.printf("The vault is empty. Use add to save your first PIN.\n")
			return
		case err != nil:
			c.printf("Cancelled.\n")
			return
		}
		name = picked
	}

	if !c.pin.Available(ctx) {
		c.printf("No device PIN enrolled. Run setpin first.\n")
		return
	}

	c.setRevealSession(&revealSession{})
	c.revealer.Toggle(ctx, name)

	if c.revealer.State() != reveal.StateRevealed {
		// denied or unknown name; the Notice callback said why
		c.takeRevealSession()
		return
	}

	// Enter hides early. After an auto-mask the masked line asks for the
	// same Enter, so this read always resolves.
	_, _ = c.reader.ReadString('\n')

	sess := c.takeRevealSession()
	c.revealer.Hide()
	c.wipeClipboard(sess)
}

// pickItem lets the user choose a stored item by name.
func (c *CLI) pickItem(label string) (string, error) {
	items := c.vault.List()
	if len(items) == 0 {
		return "", errVaultEmpty
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	return promptSelect(label, names)
}

// ── reveal.Listener ──

// RevealStarted implements [reveal.Listener]. It copies the value to the
// clipboard and prints the countdown header.
func (c *CLI) RevealStarted(item models.PinItem) {
	sess := c.currentRevealSession()
	if sess == nil {
		sess = &revealSession{}
		c.setRevealSession(sess)
	}

	sess.pin = item.PIN
	note := ""
	if err := clipboardWriteAll(item.PIN); err == nil {
		sess.copied = true
		note = ", copied to clipboard"
	}

	c.printf("Revealing %q%s. Enter hides it early.\n", item.Name, note)
}

// Progress implements [reveal.Listener]: one countdown frame, redrawn in
// place.
func (c *CLI) Progress(progress float64) {
	sess := c.currentRevealSession()
	if sess == nil || sess.pin == "" {
		return
	}

	filled := int(progress*progressBarWidth + 0.5)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled)

	c.printf("\r  %-8s  [%s] ", sess.pin, bar)
}

// Masked implements [reveal.Listener]. It wipes the countdown frame; when
// the window expired on its own it also wipes the clipboard and asks for
// the Enter the reveal command is still waiting on.
func (c *CLI) Masked() {
	c.printf("\r%s\r", strings.Repeat(" ", maskWipeWidth))

	if sess := c.takeRevealSession(); sess != nil {
		c.wipeClipboard(sess)
		c.printf("PIN hidden. Press Enter to continue.\n")
		return
	}

	c.printf("PIN hidden.\n")
}

// Notice implements [reveal.Listener].
func (c *CLI) Notice(text string) {
	c.printf("%s\n", text)
}

func (c *CLI) setRevealSession(sess *revealSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revealSession = sess
}

func (c *CLI) currentRevealSession() *revealSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealSession
}

// takeRevealSession detaches the current session. Exactly one side ends up
// with it, the Enter handler or the auto-mask callback.
func (c *CLI) takeRevealSession() *revealSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess := c.revealSession
	c.revealSession = nil
	return sess
}

// wipeClipboard drops the copied value. Best effort, the clipboard is
// outside our process.
func (c *CLI) wipeClipboard(sess *revealSession) {
	if sess == nil || !sess.copied {
		return
	}
	if err := clipboardWriteAll(""); err != nil {
		c.logger.Debug().Err(err).Str("func", "wipeClipboard").Msg("clipboard wipe failed")
	}
}
