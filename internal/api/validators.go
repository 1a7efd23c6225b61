package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"prefect_board/internal/models"
)

// RegisterValidations 向 gin 的驗證引擎註冊自訂規則
// boardrole 規則確保請求中的角色屬於已定義的集合
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("boardrole", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).Valid()
		})
	}
}
