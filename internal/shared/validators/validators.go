package validators

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// clocktime validates "HH:MM" wall-clock strings.
func clockTime(fl validator.FieldLevel) bool {
	return clockTimeRe.MatchString(fl.Field().String())
}

// bookdate validates "YYYY-MM-DD" calendar dates.
func bookDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// Register installs the custom binding validators used by request DTOs.
// Must run before the router handles traffic.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clocktime", clockTime)
		_ = v.RegisterValidation("bookdate", bookDate)
	}
}
