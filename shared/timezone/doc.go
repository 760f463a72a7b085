// Package timezone pins all calendar arithmetic to the studio's configured
// location. Booking dates, leave ranges and chalan issue dates are calendar
// days in that location, so a slot booked for "2025-12-10" means the 10th in
// the studio, not in UTC.
//
//	now := timezone.Now()
//	day, err := timezone.Parse("2006-01-02", "2025-12-10")
//	label := timezone.Format(t, "2006-01-02 15:04")
//
// The location is read from APP_TIMEZONE (an IANA name such as "Asia/Kolkata")
// and resolved once at package init. An unknown name falls back to UTC.
package timezone
