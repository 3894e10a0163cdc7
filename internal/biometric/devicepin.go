package biometric

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

// devicePINKey is the key-value store key holding the device unlock PIN.
const devicePINKey = "device_pin"

var devicePINPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ErrInvalidDevicePIN is returned by EnrollDevicePIN for anything that is
// not exactly 4 digits.
var ErrInvalidDevicePIN = errors.New("device PIN must be exactly 4 digits")

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// DevicePINVerifier checks the operator against the enrolled device unlock
// PIN using hidden terminal input. It stands in for platform biometrics on
// machines without a sensor.
type DevicePINVerifier struct {
	kv     kvstore.Store
	out    io.Writer
	logger *logger.Logger
}

// NewDevicePINVerifier returns a verifier reading the enrolled PIN from kv
// and prompting on out (os.Stdout when nil).
func NewDevicePINVerifier(kv kvstore.Store, out io.Writer, log *logger.Logger) *DevicePINVerifier {
	if out == nil {
		out = os.Stdout
	}
	return &DevicePINVerifier{kv: kv, out: out, logger: log}
}

// Available implements [Verifier]. The capability exists once a well-formed
// device PIN has been enrolled.
func (v *DevicePINVerifier) Available(ctx context.Context) bool {
	enrolled, err := v.kv.Get(ctx, devicePINKey)
	if err != nil {
		return false
	}

	return devicePINPattern.MatchString(enrolled)
}

// Verify implements [Verifier]. It shows the prompt, reads one hidden PIN
// entry and compares it in constant time against the enrolled value.
func (v *DevicePINVerifier) Verify(ctx context.Context, prompt Prompt) (bool, error) {
	enrolled, err := v.kv.Get(ctx, devicePINKey)
	if err != nil {
		return false, fmt.Errorf("load device PIN: %w", err)
	}

	if prompt.Title != "" {
		fmt.Fprintln(v.out, prompt.Title)
	}
	if prompt.Subtitle != "" {
		fmt.Fprintln(v.out, prompt.Subtitle)
	}
	if prompt.Reason != "" {
		fmt.Fprintln(v.out, prompt.Reason)
	}
	fmt.Fprint(v.out, "Device PIN: ")

	entered, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(v.out)
	if err != nil {
		return false, fmt.Errorf("read device PIN: %w", err)
	}

	match := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(string(entered))), []byte(enrolled)) == 1
	if !match {
		v.logger.Debug().Str("func", "Verify").Msg("device PIN mismatch")
	}

	return match, nil
}

// EnrollDevicePIN stores pin as the device unlock PIN after validating the
// 4-digit shape. Overwrites any previous enrollment.
func EnrollDevicePIN(ctx context.Context, kv kvstore.Store, pin string) error {
	pin = strings.TrimSpace(pin)
	if !devicePINPattern.MatchString(pin) {
		return ErrInvalidDevicePIN
	}

	if err := kv.Set(ctx, devicePINKey, pin); err != nil {
		return fmt.Errorf("store device PIN: %w", err)
	}

	return nil
}
