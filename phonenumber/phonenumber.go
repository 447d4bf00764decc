package phonenumber

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// PhoneNumber contains the metadata of a number
type PhoneNumber struct {
	RawNumber      string
	E164Format     string
	NationalFormat string
	ISOCountryCode string
	CountryCode    int
	IsValid        bool
}

// NewPhoneNumber returns the PhoneNumber struct with the given Raw number
func NewPhoneNumber(number string) PhoneNumber {
	return PhoneNumber{
		RawNumber: number,
	}
}

// Parse fills the number's metadata for the given raw number
func (pn *PhoneNumber) Parse() error {
	if pn.RawNumber == "" {
		return errors.New("Raw number is empty")
	}
	raw := pn.RawNumber
	if !strings.HasPrefix(raw, "+") {
		raw = "+" + raw
	}
	num, err := libphonenumber.Parse(raw, "US")
	if err != nil {
		return err
	}
	pn.E164Format = libphonenumber.Format(num, libphonenumber.E164)
	pn.NationalFormat = libphonenumber.Format(num, libphonenumber.NATIONAL)
	pn.ISOCountryCode = libphonenumber.GetRegionCodeForNumber(num)
	pn.CountryCode = int(num.GetCountryCode())
	pn.IsValid = libphonenumber.IsValidNumber(num)
	return nil
}

// FromCollectedDigits parses a digit buffer collected from the caller
// into a dialable number. The platform reports digits without the
// leading plus.
func FromCollectedDigits(digits string) (PhoneNumber, error) {
	pn := NewPhoneNumber("+" + digits)
	if err := pn.Parse(); err != nil {
		return pn, err
	}
	return pn, nil
}
