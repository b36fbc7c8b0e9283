// Package model defines the domain types shared across Study Buddy: users,
// sessions, and study notes, plus the application-level constants.
package model
