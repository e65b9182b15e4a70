// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers two Bitcoin specific ones:
//
//   - btc_txhash:  a 64 character hex transaction hash
//   - btc_address: an address that decodes on the Bitcoin main network
package validator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidation = errors.New("validation error")

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Hash': value 'abc' does not meet the requirements for the 'btc_txhash' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// customTags are the validation tags registered on top of the built-in ones.
var customTags = map[string]gvalidator.Func{
	"btc_txhash":  isTxHash,
	"btc_address": isMainnetAddress,
}

// Init initializes the singleton validator and registers the custom tags.
//
// It is safe to call Init multiple times; only the first call will take effect.
// It panics if a custom tag cannot be registered.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := registerTags(v, customTags); err != nil {
			panic(err)
		}
		validator = v
	})
}

// registerTags adds every tag in tags to v.
func registerTags(v *gvalidator.Validate, tags map[string]gvalidator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}

	return nil
}

// isTxHash accepts the textual form of a transaction hash.
func isTxHash(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != chainhash.MaxHashStringSize {
		return false
	}

	_, err := chainhash.NewHashFromStr(s)
	return err == nil
}

// isMainnetAddress accepts any address format btcutil can decode for mainnet.
func isMainnetAddress(fl gvalidator.FieldLevel) bool {
	addr, err := btcutil.DecodeAddress(fl.Field().String(), &chaincfg.MainNetParams)
	if err != nil {
		return false
	}

	return addr.IsForNet(&chaincfg.MainNetParams)
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidation as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		var (
			field = validationErr.Field()
			tag   = validationErr.Tag()
			value = validationErr.Value()
			err   = fmt.Errorf(errStringFormat, field, value, tag)
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidation and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type query struct {
//	    Hash string `validate:"required,btc_txhash"`
//	}
//
//	if err := validator.Validate(q); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
