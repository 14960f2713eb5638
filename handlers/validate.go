package handlers

import "net/mail"

// Validation is pure: these functions never touch the store, so the input
// rules are unit-testable without a database. A non-empty return value is
// the client-facing message for a 400 response.

func validateRegistration(name, email, phone, password string) string {
	if name == "" || email == "" || phone == "" || password == "" {
		return "All fields are required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	if !isValidEmail(email) {
		return "Invalid email format"
	}
	return ""
}

func validateLogin(email, password string) string {
	if email == "" || password == "" {
		return "Email and password are required"
	}
	return ""
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
