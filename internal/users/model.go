package users

import "time"

// Supported interface languages.
const (
	LanguageEnglish   = "en"
	LanguageUkrainian = "uk"
)

// DefaultLanguage is assigned to users who never chose one.
const DefaultLanguage = LanguageUkrainian

type User struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"fullName"`
	GivenName          string     `json:"givenName"`
	FamilyName         string     `json:"familyName"`
	PictureURL         string     `json:"pictureUrl"`
	LanguagePreference string     `json:"languagePreference"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
}

// IsSupportedLanguage reports whether lang is a language the UI ships.
func IsSupportedLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageUkrainian
}
