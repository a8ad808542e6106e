package util

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDTO 校验失败时返回 validator.ValidationErrors，交由 response.Error 统一转为 400
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
