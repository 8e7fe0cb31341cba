package api

import (
	"net/mail"
	"strings"
	"time"
)

// FieldError is one entry in the 400 response's errors array. The shape
// matches what the SPA client already consumes.
type FieldError struct {
	Msg string `json:"msg"`
}

// ValidationErrors wraps the array for the response body.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func validationFailed(msgs ...string) ValidationErrors {
	out := ValidationErrors{Errors: make([]FieldError, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, FieldError{Msg: m})
	}
	return out
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if !validEmail(r.Email) {
		msgs = append(msgs, "please include a valid email")
	}
	if len(r.Password) < 6 {
		msgs = append(msgs, "password must be 6 or more characters")
	}
	return msgs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) validate() []string {
	var msgs []string
	if !validEmail(r.Email) {
		msgs = append(msgs, "please include a valid email")
	}
	if r.Password == "" {
		msgs = append(msgs, "password is required")
	}
	return msgs
}

// UpsertProfileRequest uses pointers so an omitted field is
// distinguishable from an explicitly empty one; only present fields
// overwrite the stored profile.
type UpsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         *string `json:"status"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (r UpsertProfileRequest) validate(isCreate bool) []string {
	var msgs []string
	if r.Status != nil && strings.TrimSpace(*r.Status) == "" {
		msgs = append(msgs, "status is required")
	}
	if r.Skills != nil && strings.TrimSpace(*r.Skills) == "" {
		msgs = append(msgs, "skills is required")
	}
	if isCreate {
		if r.Status == nil {
			msgs = append(msgs, "status is required")
		}
		if r.Skills == nil {
			msgs = append(msgs, "skills is required")
		}
	}
	return msgs
}

type ExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

func (r ExperienceRequest) validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Title) == "" {
		msgs = append(msgs, "title is required")
	}
	if strings.TrimSpace(r.Company) == "" {
		msgs = append(msgs, "company is required")
	}
	if r.From == nil {
		msgs = append(msgs, "from date is required")
	}
	return msgs
}

type EducationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         *time.Time `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func (r EducationRequest) validate() []string {
	var msgs []string
	if strings.TrimSpace(r.School) == "" {
		msgs = append(msgs, "school is required")
	}
	if strings.TrimSpace(r.Degree) == "" {
		msgs = append(msgs, "degree is required")
	}
	if strings.TrimSpace(r.FieldOfStudy) == "" {
		msgs = append(msgs, "field of study is required")
	}
	if r.From == nil {
		msgs = append(msgs, "from date is required")
	}
	return msgs
}

type TextRequest struct {
	Text string `json:"text"`
}

func (r TextRequest) validate() []string {
	if strings.TrimSpace(r.Text) == "" {
		return []string{"text is required"}
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
