// Package forms binds POSTed form values to typed structs and runs the
// field rules for each flow. Handlers re-render the page with the returned
// Violations attached instead of redirecting.
package forms

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/diewo77/go-social/validation"
)

var (
	// Letters, digits and underscore. The legacy rule that additionally
	// forbade digits contradicted this charset and was dropped.
	usernameRe = regexp.MustCompile(`^\w+$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9_@]+$`)
)

type LoginForm struct {
	Username string
	Password string
}

func NewLogin(v url.Values) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(v.Get("username")),
		Password: v.Get("password"),
	}
}

func (f LoginForm) Validate() validation.Violations {
	errs := validation.Violations{}
	validation.Required("username", f.Username, errs)
	validation.Match("username", f.Username, passwordRe, "Invalid username.", errs)
	validation.Required("password", f.Password, errs)
	return errs
}

type RegisterForm struct {
	FirstName       string
	LastName        string
	Username        string
	Password        string
	ConfirmPassword string
}

func NewRegister(v url.Values) RegisterForm {
	return RegisterForm{
		FirstName:       strings.TrimSpace(v.Get("first_name")),
		LastName:        strings.TrimSpace(v.Get("last_name")),
		Username:        strings.TrimSpace(v.Get("username")),
		Password:        v.Get("password"),
		ConfirmPassword: v.Get("confirm_password"),
	}
}

func (f RegisterForm) Validate() validation.Violations {
	errs := validation.Violations{}
	validation.Required("first_name", f.FirstName, errs)
	validation.LenBetween("first_name", f.FirstName, 4, 15, errs)
	validation.Required("last_name", f.LastName, errs)
	validation.LenBetween("last_name", f.LastName, 4, 15, errs)
	validation.Required("username", f.Username, errs)
	validation.MinLen("username", f.Username, 5, errs)
	validation.Match("username", f.Username, usernameRe,
		"Username must contain only letters, numbers, and underscores.", errs)
	validation.Required("password", f.Password, errs)
	validation.MinLen("password", f.Password, 8, errs)
	validation.Match("password", f.Password, passwordRe,
		"Password may only contain letters, numbers, underscore and @.", errs)
	validation.PasswordComposition("password", f.Password, errs)
	validation.Required("confirm_password", f.ConfirmPassword, errs)
	validation.EqualTo("confirm_password", f.ConfirmPassword, f.Password,
		"Passwords must match.", errs)
	return errs
}

type PostForm struct {
	Content string
}

func NewPost(v url.Values) PostForm {
	return PostForm{Content: strings.TrimSpace(v.Get("content"))}
}

type CommentForm struct {
	Body string
}

func NewComment(v url.Values) CommentForm {
	return CommentForm{Body: strings.TrimSpace(v.Get("comment"))}
}

func (f CommentForm) Validate() validation.Violations {
	errs := validation.Violations{}
	validation.Required("comment", f.Body, errs)
	return errs
}

type FriendForm struct {
	Username string
}

func NewFriend(v url.Values) FriendForm {
	return FriendForm{Username: strings.TrimSpace(v.Get("username"))}
}

func (f FriendForm) Validate() validation.Violations {
	errs := validation.Violations{}
	validation.Required("username", f.Username, errs)
	return errs
}

type ProfileForm struct {
	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string
}

func NewProfile(v url.Values) ProfileForm {
	return ProfileForm{
		Education:   strings.TrimSpace(v.Get("education")),
		Employment:  strings.TrimSpace(v.Get("employment")),
		Music:       strings.TrimSpace(v.Get("music")),
		Movie:       strings.TrimSpace(v.Get("movie")),
		Nationality: strings.TrimSpace(v.Get("nationality")),
		Birthday:    strings.TrimSpace(v.Get("birthday")),
	}
}
