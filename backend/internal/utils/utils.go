package utils

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/samdazain/forumapi-v2/shared/config"
	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

// ContentValidator enforces length limits on user text. The text itself is
// never rewritten: responses are json and clients escape on render.
type ContentValidator struct {
	maxTitle   int
	maxContent int
}

func NewContentValidator(cfg *config.Public) *ContentValidator {
	return &ContentValidator{
		maxTitle:   cfg.MaxTitleLength,
		maxContent: cfg.MaxContentLength,
	}
}

func (v *ContentValidator) Title(title string) error {
	if title == "" {
		return internal_errors.BadRequest("judul tidak boleh kosong")
	}
	if utf8.RuneCountInString(title) > v.maxTitle {
		return internal_errors.BadRequest("judul melebihi batas panjang")
	}
	return nil
}

func (v *ContentValidator) Text(text string) error {
	if text == "" {
		return internal_errors.BadRequest("konten tidak boleh kosong")
	}
	if utf8.RuneCountInString(text) > v.maxContent {
		return internal_errors.BadRequest("konten melebihi batas panjang")
	}
	return nil
}

type registerUser struct {
	Username string `validate:"required,max=50,username"`
	Password string `validate:"required,min=6,max=72"`
	Fullname string `validate:"required,max=100"`
}

// UserValidator checks registration data.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return &UserValidator{validate: v}
}

func (v *UserValidator) RegisterUser(user domain.RegisterUser) error {
	err := v.validate.Struct(registerUser{Username: user.Username, Password: user.Password, Fullname: user.Fullname})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return internal_errors.BadRequest("tidak dapat membuat user baru")
	}
	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "required":
		return internal_errors.BadRequest("tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada")
	case fe.Field() == "Username" && fe.Tag() == "max":
		return internal_errors.BadRequest("tidak dapat membuat user baru karena karakter username melebihi batas limit")
	case fe.Field() == "Username" && fe.Tag() == "username":
		return internal_errors.BadRequest("tidak dapat membuat user baru karena username mengandung karakter terlarang")
	case fe.Field() == "Password":
		return internal_errors.BadRequest("tidak dapat membuat user baru karena panjang password tidak sesuai")
	default:
		return internal_errors.BadRequest("tidak dapat membuat user baru karena tipe data tidak sesuai")
	}
}
