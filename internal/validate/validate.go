// Package validate holds the field-level checks shared by every use case.
// Each function takes a raw value and returns the normalized value or a
// validation error naming the violated rule. Uniqueness checks belong to the
// services, which can reach the stores.
package validate

import (
	"regexp"
	"strings"

	"biblioteca-backend/internal/domain"
)

var (
	titlePattern      = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ0-9\s:,.\-]+$`)
	authorPattern     = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s,.\-]+$`)
	isbnPattern       = regexp.MustCompile(`^[0-9\-]+$`)
	namePattern       = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	nationalIDPattern = regexp.MustCompile(`^\d+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^[\d\s\-\+]+$`)
)

const (
	MinCopies int32 = 1
	MaxCopies int32 = 1000
)

func Title(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", domain.Validationf("title is required")
	}
	if len([]rune(trimmed)) < 3 {
		return "", domain.Validationf("title must be at least 3 characters")
	}
	if len([]rune(trimmed)) > 150 {
		return "", domain.Validationf("title cannot exceed 150 characters")
	}
	if !titlePattern.MatchString(trimmed) {
		return "", domain.Validationf("title contains invalid characters")
	}
	return trimmed, nil
}

func Author(author string) (string, error) {
	trimmed := strings.TrimSpace(author)
	if trimmed == "" {
		return "", domain.Validationf("author is required")
	}
	if len([]rune(trimmed)) < 3 {
		return "", domain.Validationf("author must be at least 3 characters")
	}
	if len([]rune(trimmed)) > 100 {
		return "", domain.Validationf("author cannot exceed 100 characters")
	}
	if !authorPattern.MatchString(trimmed) {
		return "", domain.Validationf("author may only contain letters, spaces and basic punctuation")
	}
	return trimmed, nil
}

func ISBN(isbn string) (string, error) {
	trimmed := strings.TrimSpace(isbn)
	if trimmed == "" {
		return "", domain.Validationf("isbn is required")
	}
	if !isbnPattern.MatchString(trimmed) {
		return "", domain.Validationf("isbn may only contain digits and dashes")
	}
	if len(trimmed) < 10 || len(trimmed) > 17 {
		return "", domain.Validationf("isbn must be between 10 and 17 characters")
	}
	return trimmed, nil
}

// Quantity checks the total-copies bound used when registering or resizing a book.
func Quantity(quantity int32) (int32, error) {
	if quantity < MinCopies {
		return 0, domain.Validationf("quantity must be greater than 0")
	}
	if quantity > MaxCopies {
		return 0, domain.Validationf("quantity cannot exceed %d copies", MaxCopies)
	}
	return quantity, nil
}

// CopyCount checks a per-category counter supplied on an administrative edit.
func CopyCount(field string, count int32) (int32, error) {
	if count < 0 {
		return 0, domain.Validationf("%s cannot be negative", field)
	}
	return count, nil
}

func MemberName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domain.Validationf("name is required")
	}
	if len([]rune(trimmed)) < 3 {
		return "", domain.Validationf("name must be at least 3 characters")
	}
	if len([]rune(trimmed)) > 100 {
		return "", domain.Validationf("name cannot exceed 100 characters")
	}
	if !namePattern.MatchString(trimmed) {
		return "", domain.Validationf("name may only contain letters and spaces")
	}
	return trimmed, nil
}

func NationalID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", domain.Validationf("national id is required")
	}
	if len(trimmed) < 7 || len(trimmed) > 10 {
		return "", domain.Validationf("national id must be between 7 and 10 characters")
	}
	if !nationalIDPattern.MatchString(trimmed) {
		return "", domain.Validationf("national id may only contain digits")
	}
	return trimmed, nil
}

func Email(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", domain.Validationf("email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return "", domain.Validationf("email is not valid")
	}
	if len(trimmed) > 100 {
		return "", domain.Validationf("email cannot exceed 100 characters")
	}
	return trimmed, nil
}

func Phone(phone string) (string, error) {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return "", domain.Validationf("phone is required")
	}
	if !phonePattern.MatchString(trimmed) {
		return "", domain.Validationf("phone may only contain digits, spaces, dashes and +")
	}
	if len(trimmed) < 7 || len(trimmed) > 20 {
		return "", domain.Validationf("phone must be between 7 and 20 characters")
	}
	return trimmed, nil
}
