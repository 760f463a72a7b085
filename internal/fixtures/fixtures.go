// Package fixtures loads a declarative demo dataset through the domain
// repositories. The dataset is embedded JSON; rows reference each other by
// name so the loader can run against a database with generated IDs.
package fixtures

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	accessModel "prism/internal/domains/access/model"
	accessRepo "prism/internal/domains/access/repository"
	bookingModel "prism/internal/domains/booking/model"
	bookingRepo "prism/internal/domains/booking/repository"
	chalanModel "prism/internal/domains/chalan/model"
	chalanRepo "prism/internal/domains/chalan/repository"
	companyModel "prism/internal/domains/company/model"
	companyRepo "prism/internal/domains/company/repository"
	customerModel "prism/internal/domains/customer/model"
	customerRepo "prism/internal/domains/customer/repository"
	editorModel "prism/internal/domains/editor/model"
	editorRepo "prism/internal/domains/editor/repository"
	leaveModel "prism/internal/domains/leave/model"
	leaveRepo "prism/internal/domains/leave/repository"
	projectModel "prism/internal/domains/project/model"
	projectRepo "prism/internal/domains/project/repository"
	roomModel "prism/internal/domains/room/model"
	roomRepo "prism/internal/domains/room/repository"
	userModel "prism/internal/domains/user/model"
	userRepo "prism/internal/domains/user/repository"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	sharedModel "prism/shared/model"
	"prism/shared/password"
	"prism/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:embed fixtures.json
var fixturesData []byte

type Company struct {
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
}

type User struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	SecurityPin string `json:"security_pin"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	FullName    string `json:"full_name"`
}

type Grant struct {
	Username  string `json:"username"`
	Module    string `json:"module"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

type Room struct {
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
	Capacity int    `json:"capacity"`
}

type Editor struct {
	Name       string `json:"name"`
	EditorType string `json:"editor_type"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type Leave struct {
	Editor   string `json:"editor"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Reason   string `json:"reason"`
}

type Contact struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

type Customer struct {
	Name      string    `json:"name"`
	GSTNumber string    `json:"gst_number"`
	Address   string    `json:"address"`
	Contacts  []Contact `json:"contacts"`
}

type Project struct {
	Name        string `json:"name"`
	ProjectType string `json:"project_type"`
	Customer    string `json:"customer"`
	Description string `json:"description"`
}

type Booking struct {
	Room        string `json:"room"`
	Editor      string `json:"editor"`
	Customer    string `json:"customer"`
	Project     string `json:"project"`
	BookingDate string `json:"booking_date"`
	FromTime    string `json:"from_time"`
	ToTime      string `json:"to_time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type ChalanItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type Chalan struct {
	Customer  string       `json:"customer"`
	Project   string       `json:"project"`
	IssueDate string       `json:"issue_date"`
	Items     []ChalanItem `json:"items"`
}

type Fixtures struct {
	Companies []Company  `json:"companies"`
	Users     []User     `json:"users"`
	Grants    []Grant    `json:"grants"`
	Rooms     []Room     `json:"rooms"`
	Editors   []Editor   `json:"editors"`
	Leaves    []Leave    `json:"leaves"`
	Customers []Customer `json:"customers"`
	Projects  []Project  `json:"projects"`
	Bookings  []Booking  `json:"bookings"`
	Chalans   []Chalan   `json:"chalans"`
}

func Get() (Fixtures, error) {
	var fixtures Fixtures

	if err := json.Unmarshal(fixturesData, &fixtures); err != nil {
		return fixtures, fmt.Errorf("failed to decode embedded fixtures: %w", err)
	}

	return fixtures, nil
}

type Loader struct {
	companies companyRepo.Company
	users     userRepo.User
	access    accessRepo.Access
	rooms     roomRepo.Room
	editors   editorRepo.Editor
	leaves    leaveRepo.Leave
	customers customerRepo.Customer
	projects  projectRepo.Project
	bookings  bookingRepo.Booking
	chalans   chalanRepo.Chalan
}

func NewLoader(
	companies companyRepo.Company,
	users userRepo.User,
	access accessRepo.Access,
	rooms roomRepo.Room,
	editors editorRepo.Editor,
	leaves leaveRepo.Leave,
	customers customerRepo.Customer,
	projects projectRepo.Project,
	bookings bookingRepo.Booking,
	chalans chalanRepo.Chalan,
) *Loader {
	return &Loader{
		companies: companies,
		users:     users,
		access:    access,
		rooms:     rooms,
		editors:   editors,
		leaves:    leaves,
		customers: customers,
		projects:  projects,
		bookings:  bookings,
		chalans:   chalans,
	}
}

const loaderActor = "seed"

func metadata() sharedModel.Metadata {
	return sharedModel.Metadata{
		CreatedBy:  loaderActor,
		ModifiedBy: loaderActor,
	}
}

func eqFilter(table, field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}

// Load populates the database from the embedded dataset. Companies and
// users already present are reused, so the loader can run more than once.
func (l *Loader) Load(ctx context.Context, fixtures Fixtures) error {
	companyIDs, err := l.loadCompanies(ctx, fixtures.Companies)
	if err != nil {
		return err
	}

	userIDs, err := l.loadUsers(ctx, fixtures.Users, companyIDs)
	if err != nil {
		return err
	}

	if err := l.loadGrants(ctx, fixtures.Grants, userIDs); err != nil {
		return err
	}

	roomIDs, err := l.loadRooms(ctx, fixtures.Rooms)
	if err != nil {
		return err
	}

	editorIDs, err := l.loadEditors(ctx, fixtures.Editors)
	if err != nil {
		return err
	}

	if err := l.loadLeaves(ctx, fixtures.Leaves, editorIDs); err != nil {
		return err
	}

	customerIDs, err := l.loadCustomers(ctx, fixtures.Customers)
	if err != nil {
		return err
	}

	projectIDs, err := l.loadProjects(ctx, fixtures.Projects, customerIDs)
	if err != nil {
		return err
	}

	if err := l.loadBookings(ctx, fixtures.Bookings, roomIDs, editorIDs, customerIDs, projectIDs); err != nil {
		return err
	}

	if err := l.loadChalans(ctx, fixtures.Chalans, customerIDs, projectIDs); err != nil {
		return err
	}

	return nil
}

func (l *Loader) loadCompanies(ctx context.Context, companies []Company) (map[string]string, error) {
	ids := make(map[string]string, len(companies))

	for _, fixture := range companies {
		filter := eqFilter(companyModel.TableName, companyModel.FieldName, fixture.Name)

		existing, err := l.companies.Get(ctx, filter)
		if err == nil && existing.ID != "" {
			ids[fixture.Name] = existing.ID

			continue
		}

		company := companyModel.Company{
			ID:        uuid.NewString(),
			Name:      fixture.Name,
			GSTNumber: fixture.GSTNumber,
			Address:   fixture.Address,
			Active:    true,
			Metadata:  metadata(),
		}

		if err := l.companies.Insert(ctx, company); err != nil {
			return nil, fmt.Errorf("failed to insert company %s: %w", fixture.Name, err)
		}

		ids[fixture.Name] = company.ID
	}

	log.Info().Int("count", len(companies)).Msg("companies loaded")

	return ids, nil
}

func (l *Loader) loadUsers(ctx context.Context, users []User, companyIDs map[string]string) (map[string]string, error) {
	ids := make(map[string]string, len(users))

	for _, fixture := range users {
		filter := eqFilter(userModel.TableName, userModel.FieldUsername, fixture.Username)

		existing, err := l.users.Get(ctx, filter)
		if err == nil && existing.ID != "" {
			ids[fixture.Username] = existing.ID

			continue
		}

		companyID, ok := companyIDs[fixture.Company]
		if !ok {
			return nil, fmt.Errorf("user %s references unknown company %s", fixture.Username, fixture.Company)
		}

		hashedPassword, err := password.Hash(fixture.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", fixture.Username, err)
		}

		hashedPin, err := password.Hash(fixture.SecurityPin)
		if err != nil {
			return nil, fmt.Errorf("failed to hash security pin for %s: %w", fixture.Username, err)
		}

		email := fixture.Email
		fullName := fixture.FullName

		user := userModel.User{
			ID:          uuid.NewString(),
			Username:    fixture.Username,
			Email:       &email,
			Password:    hashedPassword,
			SecurityPin: hashedPin,
			Role:        fixture.Role,
			CompanyID:   companyID,
			FullName:    &fullName,
			Active:      true,
			Metadata:    metadata(),
		}

		if err := l.users.Insert(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to insert user %s: %w", fixture.Username, err)
		}

		ids[fixture.Username] = user.ID
	}

	log.Info().Int("count", len(users)).Msg("users loaded")

	return ids, nil
}

func (l *Loader) loadGrants(ctx context.Context, grants []Grant, userIDs map[string]string) error {
	for _, fixture := range grants {
		userID, ok := userIDs[fixture.Username]
		if !ok {
			return fmt.Errorf("grant references unknown user %s", fixture.Username)
		}

		grant := accessModel.ModuleAccess{
			ID:        uuid.NewString(),
			UserID:    userID,
			Module:    fixture.Module,
			CanView:   fixture.CanView,
			CanCreate: fixture.CanCreate,
			CanEdit:   fixture.CanEdit,
			CanDelete: fixture.CanDelete,
			Metadata:  metadata(),
		}

		if err := l.access.Insert(ctx, grant); err != nil {
			return fmt.Errorf("failed to insert grant for %s on %s: %w", fixture.Username, fixture.Module, err)
		}
	}

	log.Info().Int("count", len(grants)).Msg("module grants loaded")

	return nil
}

func (l *Loader) loadRooms(ctx context.Context, rooms []Room) (map[string]string, error) {
	ids := make(map[string]string, len(rooms))

	for _, fixture := range rooms {
		room := roomModel.Room{
			ID:       uuid.NewString(),
			Name:     fixture.Name,
			RoomType: fixture.RoomType,
			Capacity: fixture.Capacity,
			Active:   true,
			Metadata: metadata(),
		}

		if err := l.rooms.Insert(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to insert room %s: %w", fixture.Name, err)
		}

		ids[fixture.Name] = room.ID
	}

	log.Info().Int("count", len(rooms)).Msg("rooms loaded")

	return ids, nil
}

func (l *Loader) loadEditors(ctx context.Context, editors []Editor) (map[string]string, error) {
	ids := make(map[string]string, len(editors))

	for _, fixture := range editors {
		editor := editorModel.Editor{
			ID:         uuid.NewString(),
			Name:       fixture.Name,
			EditorType: fixture.EditorType,
			Phone:      fixture.Phone,
			Email:      fixture.Email,
			Active:     true,
			Metadata:   metadata(),
		}

		if err := l.editors.Insert(ctx, editor); err != nil {
			return nil, fmt.Errorf("failed to insert editor %s: %w", fixture.Name, err)
		}

		ids[fixture.Name] = editor.ID
	}

	log.Info().Int("count", len(editors)).Msg("editors loaded")

	return ids, nil
}

func (l *Loader) loadLeaves(ctx context.Context, leaves []Leave, editorIDs map[string]string) error {
	for _, fixture := range leaves {
		editorID, ok := editorIDs[fixture.Editor]
		if !ok {
			return fmt.Errorf("leave references unknown editor %s", fixture.Editor)
		}

		fromDate, err := timezone.Parse(constant.CalendarDayFormat, fixture.FromDate)
		if err != nil {
			return fmt.Errorf("invalid leave from-date %s: %w", fixture.FromDate, err)
		}

		toDate, err := timezone.Parse(constant.CalendarDayFormat, fixture.ToDate)
		if err != nil {
			return fmt.Errorf("invalid leave to-date %s: %w", fixture.ToDate, err)
		}

		leave := leaveModel.EditorLeave{
			ID:       uuid.NewString(),
			EditorID: editorID,
			FromDate: fromDate,
			ToDate:   toDate,
			Reason:   fixture.Reason,
			Metadata: metadata(),
		}

		if err := l.leaves.Insert(ctx, leave); err != nil {
			return fmt.Errorf("failed to insert leave for %s: %w", fixture.Editor, err)
		}
	}

	log.Info().Int("count", len(leaves)).Msg("editor leaves loaded")

	return nil
}

func (l *Loader) loadCustomers(ctx context.Context, customers []Customer) (map[string]string, error) {
	ids := make(map[string]string, len(customers))

	for _, fixture := range customers {
		customer := customerModel.Customer{
			ID:        uuid.NewString(),
			Name:      fixture.Name,
			GSTNumber: fixture.GSTNumber,
			Address:   fixture.Address,
			Active:    true,
			Metadata:  metadata(),
		}

		contacts := make([]customerModel.Contact, len(fixture.Contacts))
		for i, contact := range fixture.Contacts {
			contacts[i] = customerModel.Contact{
				ID:          uuid.NewString(),
				CustomerID:  customer.ID,
				Name:        contact.Name,
				Phone:       contact.Phone,
				Email:       contact.Email,
				Designation: contact.Designation,
				Metadata:    metadata(),
			}
		}

		if err := l.customers.InsertWithContacts(ctx, customer, contacts); err != nil {
			return nil, fmt.Errorf("failed to insert customer %s: %w", fixture.Name, err)
		}

		ids[fixture.Name] = customer.ID
	}

	log.Info().Int("count", len(customers)).Msg("customers loaded")

	return ids, nil
}

func (l *Loader) loadProjects(ctx context.Context, projects []Project, customerIDs map[string]string) (map[string]string, error) {
	ids := make(map[string]string, len(projects))

	for _, fixture := range projects {
		customerID, ok := customerIDs[fixture.Customer]
		if !ok {
			return nil, fmt.Errorf("project %s references unknown customer %s", fixture.Name, fixture.Customer)
		}

		project := projectModel.Project{
			ID:          uuid.NewString(),
			Name:        fixture.Name,
			ProjectType: fixture.ProjectType,
			CustomerID:  customerID,
			Description: fixture.Description,
			Active:      true,
			Metadata:    metadata(),
		}

		if err := l.projects.Insert(ctx, project); err != nil {
			return nil, fmt.Errorf("failed to insert project %s: %w", fixture.Name, err)
		}

		ids[fixture.Name] = project.ID
	}

	log.Info().Int("count", len(projects)).Msg("projects loaded")

	return ids, nil
}

func (l *Loader) loadBookings(ctx context.Context, bookings []Booking, roomIDs, editorIDs, customerIDs, projectIDs map[string]string) error {
	for _, fixture := range bookings {
		roomID, ok := roomIDs[fixture.Room]
		if !ok {
			return fmt.Errorf("booking references unknown room %s", fixture.Room)
		}

		customerID, ok := customerIDs[fixture.Customer]
		if !ok {
			return fmt.Errorf("booking references unknown customer %s", fixture.Customer)
		}

		projectID, ok := projectIDs[fixture.Project]
		if !ok {
			return fmt.Errorf("booking references unknown project %s", fixture.Project)
		}

		bookingDate, err := timezone.Parse(constant.CalendarDayFormat, fixture.BookingDate)
		if err != nil {
			return fmt.Errorf("invalid booking date %s: %w", fixture.BookingDate, err)
		}

		booking := bookingModel.Booking{
			ID:          uuid.NewString(),
			RoomID:      roomID,
			EditorID:    editorIDs[fixture.Editor],
			CustomerID:  customerID,
			ProjectID:   projectID,
			BookingDate: bookingDate,
			FromTime:    fixture.FromTime,
			ToTime:      fixture.ToTime,
			Status:      fixture.Status,
			Notes:       fixture.Notes,
			Metadata:    metadata(),
		}

		if err := l.bookings.Insert(ctx, booking); err != nil {
			return fmt.Errorf("failed to insert booking in %s: %w", fixture.Room, err)
		}
	}

	log.Info().Int("count", len(bookings)).Msg("bookings loaded")

	return nil
}

func (l *Loader) loadChalans(ctx context.Context, chalans []Chalan, customerIDs, projectIDs map[string]string) error {
	for _, fixture := range chalans {
		customerID, ok := customerIDs[fixture.Customer]
		if !ok {
			return fmt.Errorf("chalan references unknown customer %s", fixture.Customer)
		}

		projectID, ok := projectIDs[fixture.Project]
		if !ok {
			return fmt.Errorf("chalan references unknown project %s", fixture.Project)
		}

		issueDate, err := timezone.Parse(constant.CalendarDayFormat, fixture.IssueDate)
		if err != nil {
			return fmt.Errorf("invalid chalan issue date %s: %w", fixture.IssueDate, err)
		}

		sequence, err := l.chalans.NextSequence(ctx, issueDate.Year())
		if err != nil {
			return fmt.Errorf("failed to get next chalan sequence: %w", err)
		}

		chalan := chalanModel.Chalan{
			ID:           uuid.NewString(),
			ChalanNumber: fmt.Sprintf("%s-%d-%04d", constant.ChalanNumberPrefix, issueDate.Year(), sequence),
			CustomerID:   customerID,
			ProjectID:    projectID,
			IssueDate:    issueDate,
			Metadata:     metadata(),
		}

		items := make([]chalanModel.Item, len(fixture.Items))
		for i, item := range fixture.Items {
			items[i] = chalanModel.Item{
				ID:          uuid.NewString(),
				ChalanID:    chalan.ID,
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				Amount:      item.Quantity * item.Rate,
				Metadata:    metadata(),
			}
			chalan.TotalAmount += items[i].Amount
		}

		if err := l.chalans.InsertWithItems(ctx, chalan, items); err != nil {
			return fmt.Errorf("failed to insert chalan for %s: %w", fixture.Customer, err)
		}
	}

	log.Info().Int("count", len(chalans)).Msg("chalans loaded")

	return nil
}
