package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Xushengqwer/comment_service/models/enums"
)

// RegisterValidators 在 gin 的绑定校验器上注册审核相关的自定义标签：
// comment_status / report_status / report_category / deletion_scope
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin 绑定校验器不是 validator/v10 实例")
	}
	return registerEnumTags(v)
}

func registerEnumTags(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"comment_status": func(s string) bool {
			_, err := enums.ParseCommentStatus(s)
			return err == nil
		},
		"report_status": func(s string) bool {
			_, err := enums.ParseReportStatus(s)
			return err == nil
		},
		"report_category": func(s string) bool {
			_, err := enums.ParseReportCategory(s)
			return err == nil
		},
		"deletion_scope": func(s string) bool {
			_, err := enums.ParseDeletionScope(s)
			return err == nil
		},
	}
	for tag, fn := range tags {
		check := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			return fmt.Errorf("注册校验标签 %s 失败: %w", tag, err)
		}
	}
	return nil
}
