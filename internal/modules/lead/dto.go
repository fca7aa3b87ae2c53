package lead

import (
	"fmt"
	"strings"
)

// Submission is the raw, untrusted contact form payload. Website is the
// honeypot field: hidden in the form, expected to stay empty.
type Submission struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Message string
	Source  string
	Consent bool
	Website string
}

// submissionFromMap lifts a decoded JSON object or form field map into a
// Submission. Values may be strings, booleans or numbers at this boundary.
func submissionFromMap(data map[string]any) Submission {
	return Submission{
		Name:    str(data["name"]),
		Phone:   str(data["phone"]),
		Email:   str(data["email"]),
		City:    str(data["city"]),
		Message: str(data["message"]),
		Source:  str(data["source"]),
		Consent: truthy(data["consent"]),
		Website: str(data["website"]),
	}
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// truthy interprets the consent flag across JSON and form encodings:
// boolean true, any non-zero number, or a non-empty string other than
// "0"/"false" (checkboxes submit "on").
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(t)
		return s != "" && s != "0" && !strings.EqualFold(s, "false")
	default:
		return false
	}
}
