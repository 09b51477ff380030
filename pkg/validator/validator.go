package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("timeofday", timeOfDayValidator)
		if err != nil {
			log.Fatal("register timeofday validator failed")
		}
	}
}

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// timeOfDayValidator accepts 24h clock values like "08:00" or "20:30".
var timeOfDayValidator validator.Func = func(fl validator.FieldLevel) bool {
	return timeOfDayPattern.MatchString(fl.Field().String())
}
