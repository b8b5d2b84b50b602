package utils

import (
	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("semver_version", validateSemverVersion)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSemverVersion(fl validator.FieldLevel) bool {
	_, err := semver.StrictNewVersion(fl.Field().String())
	return err == nil
}
