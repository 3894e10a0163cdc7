package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pin-vault/internal/vault"
	"github.com/MKhiriev/go-pin-vault/models"
)

func (c *CLI) addItem(ctx context.Context) {
	name, err := c.readLine("Name")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	pin, err := c.readSecretTwice("PIN (4-8 digits)")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	if err := c.vault.Add(ctx, models.PinItem{Name: name, PIN: pin}); err != nil {
		c.printVaultError(err)
		return
	}

	c.printf("Saved %q.\n", strings.TrimSpace(name))
}

func (c *CLI) listItems() {
	items := c.vault.List()
	if len(items) == 0 {
		c.printf("The vault is empty. Use add to save your first PIN.\n")
		return
	}

	for i, item := range items {
		c.printf("%2d. %-24s %s\n", i+1, item.Name, maskPIN(item.PIN))
	}
}

func (c *CLI) updateItem(ctx context.Context, args []string) {
	name, err := c.nameFromArgsOrPrompt(args, "Name of the item to update")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	pin, err := c.readSecretTwice("New PIN (4-8 digits)")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	if err := c.vault.Update(ctx, name, models.PinItem{Name: name, PIN: pin}); err != nil {
		c.printVaultError(err)
		return
	}

	c.printf("Updated %q.\n", strings.TrimSpace(name))
}

func (c *CLI) removeItem(ctx context.Context, args []string) {
	name, err := c.nameFromArgsOrPrompt(args, "Name of the item to remove")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	if err := c.vault.Remove(ctx, name); err != nil {
		c.printVaultError(err)
		return
	}

	c.printf("Removed %q.\n", strings.TrimSpace(name))
}

// nameFromArgsOrPrompt joins command arguments into an item name, or prompts
// when the command came without one. Names may contain spaces.
func (c *CLI) nameFromArgsOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return c.readLine(prompt)
}

func (c *CLI) printVaultError(err error) {
	switch {
	case errors.Is(err, vault.ErrDuplicateName):
		c.printf("An item with this name already exists. Names are compared case-insensitively.\n")
	case errors.Is(err, vault.ErrItemNotFound):
		c.printf("No saved PIN with this name. Use list to see what is stored.\n")
	case errors.Is(err, vault.ErrInvalidPIN):
		c.printf("A PIN must be 4 to 8 digits.\n")
	case errors.Is(err, vault.ErrEmptyName):
		c.printf("The name must not be empty.\n")
	default:
		c.printf("error: %v\n", err)
	}
}

// maskPIN renders a stored value without showing it. Length is all the list
// view gives away.
func maskPIN(pin string) string {
	return strings.Repeat("*", len(pin))
}
