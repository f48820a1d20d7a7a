// Package timezone provides timezone and calendar-date utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Parsing a check-in date as submitted by a guest:
//     checkIn, err := timezone.ParseDate("2024-06-01")
//
//  3. Comparing calendar days:
//     timezone.SameDay(stored, searched)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
