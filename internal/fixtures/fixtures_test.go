package fixtures_test

import (
	"testing"
	"time"

	"prism/internal/domains/access/policy"
	"prism/internal/fixtures"
	"prism/shared/constant"
)

func TestGet(t *testing.T) {
	data, err := fixtures.Get()
	if err != nil {
		t.Fatalf("expected embedded fixtures to decode, got error: %v", err)
	}

	if len(data.Companies) == 0 {
		t.Error("expected at least one company")
	}
	if len(data.Users) == 0 {
		t.Error("expected at least one user")
	}
	if len(data.Bookings) == 0 {
		t.Error("expected at least one booking")
	}
}

func TestFixtureReferences(t *testing.T) {
	data, err := fixtures.Get()
	if err != nil {
		t.Fatalf("failed to decode embedded fixtures: %v", err)
	}

	companies := nameSet(data.Companies, func(c fixtures.Company) string { return c.Name })
	usernames := nameSet(data.Users, func(u fixtures.User) string { return u.Username })
	rooms := nameSet(data.Rooms, func(r fixtures.Room) string { return r.Name })
	editors := nameSet(data.Editors, func(e fixtures.Editor) string { return e.Name })
	customers := nameSet(data.Customers, func(c fixtures.Customer) string { return c.Name })
	projects := nameSet(data.Projects, func(p fixtures.Project) string { return p.Name })

	for _, user := range data.Users {
		if !companies[user.Company] {
			t.Errorf("user %s references unknown company %s", user.Username, user.Company)
		}
	}

	for _, grant := range data.Grants {
		if !usernames[grant.Username] {
			t.Errorf("grant references unknown user %s", grant.Username)
		}
		if !policy.KnownModule(grant.Module) {
			t.Errorf("grant for %s references unknown module %s", grant.Username, grant.Module)
		}
	}

	for _, leave := range data.Leaves {
		if !editors[leave.Editor] {
			t.Errorf("leave references unknown editor %s", leave.Editor)
		}
	}

	for _, project := range data.Projects {
		if !customers[project.Customer] {
			t.Errorf("project %s references unknown customer %s", project.Name, project.Customer)
		}
	}

	for _, booking := range data.Bookings {
		if !rooms[booking.Room] {
			t.Errorf("booking references unknown room %s", booking.Room)
		}
		if booking.Editor != "" && !editors[booking.Editor] {
			t.Errorf("booking references unknown editor %s", booking.Editor)
		}
		if !customers[booking.Customer] {
			t.Errorf("booking references unknown customer %s", booking.Customer)
		}
		if !projects[booking.Project] {
			t.Errorf("booking references unknown project %s", booking.Project)
		}
	}

	for _, chalan := range data.Chalans {
		if !customers[chalan.Customer] {
			t.Errorf("chalan references unknown customer %s", chalan.Customer)
		}
		if !projects[chalan.Project] {
			t.Errorf("chalan references unknown project %s", chalan.Project)
		}
		if len(chalan.Items) == 0 {
			t.Errorf("chalan for %s has no items", chalan.Customer)
		}
	}
}

func TestFixtureValues(t *testing.T) {
	data, err := fixtures.Get()
	if err != nil {
		t.Fatalf("failed to decode embedded fixtures: %v", err)
	}

	validStatuses := map[string]bool{
		constant.BookingStatusPlanning:  true,
		constant.BookingStatusTentative: true,
		constant.BookingStatusConfirmed: true,
		constant.BookingStatusCancelled: true,
	}

	for _, booking := range data.Bookings {
		if !validStatuses[booking.Status] {
			t.Errorf("booking in %s has invalid status %s", booking.Room, booking.Status)
		}
		if _, err := time.Parse(constant.CalendarDayFormat, booking.BookingDate); err != nil {
			t.Errorf("booking in %s has invalid date %s", booking.Room, booking.BookingDate)
		}
		from, err := time.Parse(constant.ClockFormat, booking.FromTime)
		if err != nil {
			t.Errorf("booking in %s has invalid from-time %s", booking.Room, booking.FromTime)
			continue
		}
		to, err := time.Parse(constant.ClockFormat, booking.ToTime)
		if err != nil {
			t.Errorf("booking in %s has invalid to-time %s", booking.Room, booking.ToTime)
			continue
		}
		if !from.Before(to) {
			t.Errorf("booking in %s has inverted time range %s-%s", booking.Room, booking.FromTime, booking.ToTime)
		}
	}

	for _, leave := range data.Leaves {
		from, err := time.Parse(constant.CalendarDayFormat, leave.FromDate)
		if err != nil {
			t.Errorf("leave for %s has invalid from-date %s", leave.Editor, leave.FromDate)
			continue
		}
		to, err := time.Parse(constant.CalendarDayFormat, leave.ToDate)
		if err != nil {
			t.Errorf("leave for %s has invalid to-date %s", leave.Editor, leave.ToDate)
			continue
		}
		if to.Before(from) {
			t.Errorf("leave for %s has inverted date range %s-%s", leave.Editor, leave.FromDate, leave.ToDate)
		}
	}

	validRoles := map[string]bool{
		constant.RoleAdmin:  true,
		constant.RoleGST:    true,
		constant.RoleNonGST: true,
	}

	for _, user := range data.Users {
		if !validRoles[user.Role] {
			t.Errorf("user %s has invalid role %s", user.Username, user.Role)
		}
	}

	for _, chalan := range data.Chalans {
		if _, err := time.Parse(constant.CalendarDayFormat, chalan.IssueDate); err != nil {
			t.Errorf("chalan for %s has invalid issue date %s", chalan.Customer, chalan.IssueDate)
		}
		for _, item := range chalan.Items {
			if item.Quantity <= 0 || item.Rate < 0 {
				t.Errorf("chalan item %q has invalid quantity or rate", item.Description)
			}
		}
	}
}

func nameSet[T any](items []T, name func(T) string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[name(item)] = true
	}

	return set
}
