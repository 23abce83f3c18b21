package core

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"
)

var (
	// custom validation tags & texts
	monthKeyTag  = "monthkey"
	monthKeyText = "must be a month in YYYY-MM form or a localized month label"

	decimalGT0Tag  = "dgt0"
	decimalGT0Text = "must be an amount greater than zero"

	requiredTag     = "required"
	requiredWithTag = "required_with"
	requiredText    = "this field is required"
)

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(monthKeyTag, monthKeyValidation)
	RegisterCustomTranslation(validate, translator, monthKeyTag, monthKeyText)

	validate.RegisterCustomTypeFunc(decimalValuer, decimal.Decimal{})
	_ = validate.RegisterValidation(decimalGT0Tag, decimalGT0Validation)
	RegisterCustomTranslation(validate, translator, decimalGT0Tag, decimalGT0Text)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, requiredWithTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// monthKeyValidation accepts a canonical month key or a localized month label.
func monthKeyValidation(fl validator.FieldLevel) bool {
	_, err := ParseMonth(fl.Field().String())
	return err == nil
}

func decimalValuer(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// decimalGT0Validation only allows strictly positive money amounts.
func decimalGT0Validation(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}
