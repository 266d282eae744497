package validator

import (
	"ctchen222/terminal-tic-tac-toe/internal/bot"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("difficulty", isDifficulty); err != nil {
		panic(err)
	}
}

// isDifficulty accepts the bot's difficulty levels.
func isDifficulty(fl validator.FieldLevel) bool {
	return slices.Contains(bot.Difficulties, fl.Field().String())
}

func GetValidator() *validator.Validate {
	return validate
}
