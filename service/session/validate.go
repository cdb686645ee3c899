package session

import (
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/spl-minter/core"
)

const maxSymbolLength = 10

func validateForm(form core.TokenForm) error {
	if form.Name == "" || form.Symbol == "" {
		return core.NewError(core.KindValidation, "Name and symbol are required")
	}

	if utf8.RuneCountInString(form.Symbol) > maxSymbolLength {
		return core.NewError(core.KindValidation, "Symbol must be 10 characters or less")
	}

	if form.Decimals < 0 || form.Decimals > 9 {
		return core.NewError(core.KindValidation, "Decimals must be between 0 and 9")
	}

	if form.InitialSupply < 0 {
		return core.NewError(core.KindValidation, "Initial supply cannot be negative")
	}

	if form.Image != "" && !govalidator.IsURL(form.Image) {
		return core.NewError(core.KindValidation, "Image must be a valid URL")
	}

	return nil
}
