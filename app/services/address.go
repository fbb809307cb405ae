package services

import (
	"strings"

	"github.com/shashiranjanraj/pitstore/app/models"
)

// Placeholders used when neither the shopper nor the profile supplies a
// value.
const (
	NotProvided        = "Not provided"
	AddressNotProvided = "Address not provided"
	CityNotProvided    = "City not provided"
	StateNotProvided   = "State not provided"
	ZipNotProvided     = "ZIP not provided"
)

type addressSource func(supplied *models.Address, user models.User) (models.Address, bool)

// addressSources are tried in order; the first that yields an address wins.
var addressSources = []addressSource{suppliedAddress, profileAddress}

// ResolveAddress picks the shipping address for an order: the one the
// shopper supplied when it has a street line, otherwise one derived from the
// profile with placeholders for what the profile lacks.
func ResolveAddress(supplied *models.Address, user models.User) models.Address {
	for _, src := range addressSources {
		if a, ok := src(supplied, user); ok {
			return a
		}
	}
	return placeholderAddress()
}

func suppliedAddress(supplied *models.Address, user models.User) (models.Address, bool) {
	if supplied == nil || strings.TrimSpace(supplied.Street) == "" {
		return models.Address{}, false
	}
	a := *supplied
	if a.Name == "" {
		a.Name = strings.TrimSpace(a.FirstName + " " + a.LastName)
	}
	if a.Name == "" {
		a.Name = user.Name
	}
	if a.FirstName == "" && a.LastName == "" {
		a.FirstName, a.LastName = splitName(user.Name)
	}
	a.Email = firstNonBlank(a.Email, user.Email, NotProvided)
	a.Phone = firstNonBlank(a.Phone, NotProvided)
	a.City = firstNonBlank(a.City, CityNotProvided)
	a.State = firstNonBlank(a.State, StateNotProvided)
	a.ZipCode = firstNonBlank(a.ZipCode, ZipNotProvided)
	return a, true
}

func profileAddress(_ *models.Address, user models.User) (models.Address, bool) {
	a := placeholderAddress()
	a.Name = user.Name
	a.FirstName, a.LastName = splitName(user.Name)
	a.Email = firstNonBlank(user.Email, NotProvided)
	return a, true
}

func placeholderAddress() models.Address {
	return models.Address{
		Email:   NotProvided,
		Phone:   NotProvided,
		Street:  AddressNotProvided,
		City:    CityNotProvided,
		State:   StateNotProvided,
		ZipCode: ZipNotProvided,
	}
}

// splitName takes the first word as the first name and the rest as the
// last name.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
